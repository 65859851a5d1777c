package main

import (
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/mult2048/internal/engine"
)

var flagStepInit bool

// stepOutput is the JSON shape written by the step command.
type stepOutput struct {
	Board [][]int `json:"board"`
	Delta int     `json:"delta"`
	State int     `json:"state"`
}

var stepCmd = &cobra.Command{
	Use:   "step [direction]",
	Short: "Apply one move to a board (JSON in/out)",
	Long: `Apply a single move to a board read as JSON from stdin and print the
result as JSON. Useful for scripting, bots, and debugging.

The board is a 4x4 matrix: 0 is empty, positive powers of two are value
tiles, and -1/-2/-4 are the x1/x2/x4 multiplier tiles.

Directions: 0 = down, 1 = right, 2 = up, 3 = left.

State in the output: 1 = win (65536 built), -1 = loss (no move changes
the board), 0 = game continues.

Examples:
  echo '[[0,0,0,0],[0,0,0,0],[0,2,0,0],[0,2,0,0]]' | mult2048 step 0
  mult2048 step --init --seed 42`,
	Args: cobra.MaximumNArgs(1),
	Run:  runStep,
}

func init() {
	stepCmd.Flags().BoolVar(&flagStepInit, "init", false, "Print a fresh starting board instead of applying a move")
}

func runStep(cmd *cobra.Command, args []string) {
	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	if flagStepInit {
		out := stepOutput{Board: engine.InitCells(rng), Delta: 0, State: engine.CodeContinue}
		printJSON(out)
		return
	}

	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "Error: direction argument is required (0=down, 1=right, 2=up, 3=left)")
		os.Exit(1)
	}

	dirCode, err := strconv.Atoi(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid direction %q\n", args[0])
		os.Exit(1)
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading board: %v\n", err)
		os.Exit(1)
	}

	var cells [][]int
	if err := json.Unmarshal(data, &cells); err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing board JSON: %v\n", err)
		os.Exit(1)
	}

	board, err := engine.FromCells(cells)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := engine.Validate(board); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	next, delta, state, err := engine.StepCells(cells, dirCode, rng)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	printJSON(stepOutput{Board: next, Delta: delta, State: state})
}

func printJSON(out stepOutput) {
	enc := json.NewEncoder(os.Stdout)
	if err := enc.Encode(out); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding output: %v\n", err)
		os.Exit(1)
	}
}
