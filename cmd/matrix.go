package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/shadower/internal/domain"
	m "github.com/mouse-blink/shadower/internal/model"
	"github.com/mouse-blink/shadower/internal/platform"
)

var matrixFromFlag int
var matrixToFlag int
var matrixParallelFlag int

// matrixCmd represents the matrix command.
var matrixCmd = newMatrixCmd()

func newMatrixCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "matrix [types...]",
		Short: "Resolve types across a range of versions",
		Long: `Resolve every registered type, or only the given types, at each version
from --from to --to inclusive and print the winning shadow per cell.
Cells are resolved concurrently by up to --parallel workers.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if matrixFromFlag < 0 || matrixToFlag < matrixFromFlag {
				return fmt.Errorf("invalid version span %d..%d: %w", matrixFromFlag, matrixToFlag, domain.ErrInvalidVersion)
			}

			parallel := cfg.Parallel
			if cmd.Flags().Changed("parallel") {
				parallel = matrixParallelFlag
			}

			types := sandbox.Registry().Types()
			if len(args) > 0 {
				types = make([]m.TypeID, 0, len(args))
				for _, arg := range args {
					types = append(types, m.TypeID(arg))
				}
			}

			versions := make([]int, 0, matrixToFlag-matrixFromFlag+1)
			for v := matrixFromFlag; v <= matrixToFlag; v++ {
				versions = append(versions, v)
			}

			result, err := domain.Matrix(cmd.Context(), sandbox.Resolver(), types, versions, parallel)
			if err != nil {
				return err
			}

			return ui.DisplayMatrix(result)
		},
	}
	cmd.Flags().IntVar(&matrixFromFlag, "from", platform.JellyBeanMR1, "first version")
	cmd.Flags().IntVar(&matrixToFlag, "to", platform.Oreo, "last version")
	cmd.Flags().IntVarP(&matrixParallelFlag, "parallel", "p", 1, "number of parallel resolution workers")

	return cmd
}

func init() {
	rootCmd.AddCommand(matrixCmd)
}
