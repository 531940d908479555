package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/outliner/pkg/logging"
	"github.com/arthur-debert/outliner/pkg/outliner"
	"github.com/arthur-debert/outliner/pkg/scene"
	"github.com/arthur-debert/outliner/pkg/ui/display"
)

// step is one operator call. props is built against the opened session so
// names can be resolved to indices.
type step struct {
	id    string
	props *outliner.Properties
	build func(s *session) (*outliner.Properties, error)
}

func (st step) properties(s *session) (*outliner.Properties, error) {
	if st.build != nil {
		return st.build(s)
	}
	return st.props, nil
}

// runOperators runs steps in order on one session and stops at the first
// failure. The document is saved only when every step succeeded.
func (a *app) runOperators(cmd *cobra.Command, invoke bool, steps ...step) error {
	s, err := a.open()
	if err != nil {
		return err
	}
	r, err := a.renderer(cmd)
	if err != nil {
		return err
	}

	reg := outliner.NewRegistry()
	ctx := s.context()
	ids := make([]string, 0, len(steps))

	var runErr error
	for _, st := range steps {
		op, err := lookupOperator(reg, st.id)
		if err != nil {
			return err
		}
		ids = append(ids, op.ID())

		props, err := st.properties(s)
		if err != nil {
			return err
		}
		if runErr = outliner.Run(ctx, op, props, invoke); runErr != nil {
			break
		}
	}

	result := &display.RunResult{
		Operator: strings.Join(ids, ", "),
		Reports:  ctx.Reports.Items(),
	}

	logger := logging.GetLogger("cli")
	entry := logger.Debug()
	if ctx.Reports.HasErrors() {
		entry = logger.Info()
	}
	entry.Str("operators", result.Operator).Int("updates", len(s.bus.Drain())).Msg("Operators run")
	if runErr == nil {
		if err := s.save(); err != nil {
			return err
		}
		result.Scene = display.NewSceneView(s.scene, s.space)
	}

	if err := r.RenderRun(result); err != nil {
		return err
	}
	if runErr != nil {
		return reportedError{runErr}
	}
	return nil
}

func newLinkCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "link <collection>",
		Short:   MsgLinkShort,
		GroupID: "operators",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runOperators(cmd, true, step{
				id: "collection_link",
				build: func(s *session) (*outliner.Properties, error) {
					idx, err := collectionIndex(s.scene, args[0])
					if err != nil {
						return nil, err
					}
					return outliner.NewProperties().SetInt("scene_collection", idx), nil
				},
			})
		},
	}
}

// selectStep makes the named layer collection active.
func selectStep(name string) step {
	return step{
		id: "collection_select",
		build: func(s *session) (*outliner.Properties, error) {
			idx, err := layerCollectionIndex(s.scene, name)
			if err != nil {
				return nil, err
			}
			return outliner.NewProperties().SetInt("collection_index", idx), nil
		},
	}
}

func newUnlinkCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "unlink [collection]",
		Short:   MsgUnlinkShort,
		GroupID: "operators",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var steps []step
			if len(args) == 1 {
				steps = append(steps, selectStep(args[0]))
			}
			steps = append(steps, step{id: "collection_unlink"})
			return a.runOperators(cmd, true, steps...)
		},
	}
}

func newNewCmd(a *app) *cobra.Command {
	var group string

	cmd := &cobra.Command{
		Use:     "new",
		Short:   MsgNewShort,
		GroupID: "operators",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runOperators(cmd, true, step{
				id: "collection_new",
				build: func(s *session) (*outliner.Properties, error) {
					props := outliner.NewProperties()
					if group == "" {
						return props, nil
					}
					idx, err := groupIndex(s.scene, group)
					if err != nil {
						return nil, err
					}
					return props.
						SetEnum("type", scene.CollectionTypeGroup.String()).
						SetInt("group", idx), nil
				},
			})
		},
	}

	cmd.Flags().StringVar(&group, "group", "", MsgFlagNewGroup)
	return cmd
}

func newDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "delete [path...]",
		Short:   MsgDeleteShort,
		Long:    MsgDeleteLong,
		GroupID: "operators",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runOperators(cmd, true, step{
				id: "collections_delete",
				build: func(s *session) (*outliner.Properties, error) {
					if len(args) == 0 {
						return nil, nil
					}
					s.space.DeselectAll()
					return nil, s.space.Select(args...)
				},
			})
		},
	}
}

func newActivateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "activate <collection>",
		Short:   MsgActivateShort,
		GroupID: "operators",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runOperators(cmd, true, selectStep(args[0]))
		},
	}
}

func newToggleCmd(a *app) *cobra.Command {
	var enable, disable bool

	cmd := &cobra.Command{
		Use:     "toggle [collection]",
		Short:   MsgToggleShort,
		GroupID: "operators",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runOperators(cmd, true, step{
				id: "collection_toggle",
				build: func(s *session) (*outliner.Properties, error) {
					action := outliner.ActionToggle
					switch {
					case enable:
						action = outliner.ActionEnable
					case disable:
						action = outliner.ActionDisable
					}
					props := outliner.NewProperties().SetEnum("action", action)
					if len(args) == 0 {
						return props, nil
					}
					idx, err := layerCollectionIndex(s.scene, args[0])
					if err != nil {
						return nil, err
					}
					return props.SetInt("collection_index", idx), nil
				},
			})
		},
	}

	cmd.Flags().BoolVar(&enable, "enable", false, MsgFlagEnable)
	cmd.Flags().BoolVar(&disable, "disable", false, MsgFlagDisable)
	cmd.MarkFlagsMutuallyExclusive("enable", "disable")
	return cmd
}
