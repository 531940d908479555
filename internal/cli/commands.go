package cli

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/outliner/internal/version"
	"github.com/arthur-debert/outliner/pkg/config"
	"github.com/arthur-debert/outliner/pkg/document"
	"github.com/arthur-debert/outliner/pkg/errors"
	"github.com/arthur-debert/outliner/pkg/outliner"
	"github.com/arthur-debert/outliner/pkg/paths"
	"github.com/arthur-debert/outliner/pkg/scene"
	"github.com/arthur-debert/outliner/pkg/ui/display"
)

func newInitCmd(a *app) *cobra.Command {
	var (
		force  bool
		mode   string
		groups []string
	)

	cmd := &cobra.Command{
		Use:     "init",
		Short:   MsgInitShort,
		GroupID: "scene",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := a.documentPath()
			if _, err := os.Stat(path); err == nil && !force {
				return errors.Newf(errors.ErrAlreadyExists, MsgErrDocumentExists, path).
					WithDetail("path", path)
			}

			if mode == "" {
				mode = a.cfg.Outliner.Mode
			}
			displayMode, err := outliner.ParseDisplayMode(mode)
			if err != nil {
				return err
			}

			sc := scene.New(a.cfg.Scene.Name, scene.Options{
				MasterName:       a.cfg.Scene.MasterName,
				LayerName:        a.cfg.Scene.LayerName,
				CollectionPrefix: a.cfg.Naming.CollectionPrefix,
			})
			sc.Groups = append(append([]string(nil), a.cfg.Scene.Groups...), groups...)

			space := outliner.NewSpace(displayMode)
			space.Rebuild(sc)

			if err := document.Save(path, document.FromScene(sc, space)); err != nil {
				return err
			}
			log.Info().Str("path", path).Str("scene", sc.ID).Msg("Scene document created")

			r, err := a.renderer(cmd)
			if err != nil {
				return err
			}
			return r.RenderMessage(fmt.Sprintf(MsgDocumentCreated, path))
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, MsgFlagForce)
	cmd.Flags().StringVar(&mode, "mode", "", MsgFlagMode)
	cmd.Flags().StringArrayVar(&groups, "group", nil, MsgFlagGroup)
	return cmd
}

func newShowCmd(a *app) *cobra.Command {
	var mode string

	cmd := &cobra.Command{
		Use:     "show",
		Short:   MsgShowShort,
		GroupID: "scene",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.open()
			if err != nil {
				return err
			}
			if mode != "" {
				displayMode, err := outliner.ParseDisplayMode(mode)
				if err != nil {
					return err
				}
				s.space.Mode = displayMode
				s.space.Rebuild(s.scene)
			}

			r, err := a.renderer(cmd)
			if err != nil {
				return err
			}
			return r.RenderScene(display.NewSceneView(s.scene, s.space))
		},
	}

	cmd.Flags().StringVar(&mode, "mode", "", MsgFlagMode)
	return cmd
}

func newExportCmd(a *app) *cobra.Command {
	var (
		asXML  bool
		to     string
		output string
	)

	cmd := &cobra.Command{
		Use:     "export",
		Short:   MsgExportShort,
		GroupID: "scene",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := document.Load(a.documentPath())
			if err != nil {
				return err
			}

			var buf bytes.Buffer
			if asXML {
				if err := document.ExportXML(&buf, d); err != nil {
					return err
				}
			} else {
				format, err := exportFormat(to, output)
				if err != nil {
					return err
				}
				data, err := document.Encode(d, format)
				if err != nil {
					return err
				}
				buf.Write(data)
			}

			if output == "" {
				_, err := io.Copy(cmd.OutOrStdout(), &buf)
				return err
			}
			output = paths.ExpandHome(output)
			if err := os.MkdirAll(filepath.Dir(output), 0755); err != nil {
				return errors.Wrapf(err, errors.ErrDocumentSave, "failed to create %s", filepath.Dir(output))
			}
			if err := os.WriteFile(output, buf.Bytes(), 0644); err != nil {
				return errors.Wrapf(err, errors.ErrDocumentSave, "failed to write %s", output)
			}
			log.Info().Str("path", output).Bool("xml", asXML).Msg("Scene exported")
			return nil
		},
	}

	cmd.Flags().BoolVar(&asXML, "xml", false, MsgFlagXML)
	cmd.Flags().StringVar(&to, "to", "", MsgFlagTo)
	cmd.Flags().StringVarP(&output, "output", "o", "", MsgFlagOutput)
	return cmd
}

// exportFormat picks the document format from --to, then from the output
// file name, then falls back to TOML.
func exportFormat(to, output string) (document.Format, error) {
	switch {
	case to != "":
		return document.FormatFor("export." + to)
	case output != "":
		return document.FormatFor(output)
	default:
		return document.FormatTOML, nil
	}
}

func newSelectCmd(a *app) *cobra.Command {
	var deselect, clearFirst bool

	cmd := &cobra.Command{
		Use:     "select [path...]",
		Short:   MsgSelectShort,
		GroupID: "scene",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.open()
			if err != nil {
				return err
			}

			if clearFirst {
				s.space.DeselectAll()
			}
			if deselect {
				err = s.space.Deselect(args...)
			} else {
				err = s.space.Select(args...)
			}
			if err != nil {
				return err
			}
			if err := s.save(); err != nil {
				return err
			}

			r, err := a.renderer(cmd)
			if err != nil {
				return err
			}
			return r.RenderScene(display.NewSceneView(s.scene, s.space))
		},
	}

	cmd.Flags().BoolVar(&deselect, "deselect", false, MsgFlagDeselect)
	cmd.Flags().BoolVar(&clearFirst, "clear", false, MsgFlagClear)
	return cmd
}

func newOperatorsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "operators",
		Short:   MsgOperatorsShort,
		GroupID: "operators",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var ctx *outliner.Context
			s, err := a.open()
			switch {
			case err == nil:
				ctx = s.context()
			case errors.IsErrorCode(err, errors.ErrFileNotFound):
				log.Debug().Msg("No scene document, listing operators without availability")
			default:
				return err
			}

			r, err := a.renderer(cmd)
			if err != nil {
				return err
			}
			return r.RenderOperators(display.NewOperatorInfos(outliner.NewRegistry().Values(), ctx))
		},
	}
}

func newRunCmd(a *app) *cobra.Command {
	var (
		assignments []string
		exec        bool
	)

	cmd := &cobra.Command{
		Use:     "run <operator>",
		Short:   MsgRunShort,
		Long:    MsgRunLong,
		GroupID: "operators",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			props, err := outliner.ParseAssignments(assignments)
			if err != nil {
				return err
			}
			return a.runOperators(cmd, !exec, step{id: args[0], props: props})
		},
	}

	cmd.Flags().StringArrayVarP(&assignments, "prop", "p", nil, MsgFlagProp)
	cmd.Flags().BoolVar(&exec, "exec", false, MsgFlagExec)
	return cmd
}

func newConfigCmd(a *app) *cobra.Command {
	var write bool

	cmd := &cobra.Command{
		Use:     "config",
		Short:   MsgConfigShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			content := config.GenerateConfigContent()
			if !write {
				_, err := fmt.Fprint(cmd.OutOrStdout(), content)
				return err
			}

			path := paths.ConfigFile()
			if _, err := os.Stat(path); err == nil {
				return errors.Newf(errors.ErrAlreadyExists, MsgErrConfigExists, path)
			}
			if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
				return errors.Wrap(err, errors.ErrConfigLoad, "failed to create config directory")
			}
			if err := os.WriteFile(path, []byte(content), 0644); err != nil {
				return errors.Wrap(err, errors.ErrConfigLoad, "failed to write config template")
			}

			r, err := a.renderer(cmd)
			if err != nil {
				return err
			}
			return r.RenderMessage(fmt.Sprintf(MsgConfigWritten, path))
		},
	}

	cmd.Flags().BoolVar(&write, "write", false, MsgFlagWrite)
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		Long:    MsgVersionLong,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), MsgVersionFormat, version.Version, version.Commit, version.Date)
		},
	}
}
