package fa

import (
	"bytes"
	"fmt"
	"os/exec"
)

// RenderPNG shells out to the Graphviz dot binary to rasterize a's digraph
// (spec §5's diagram output, grounded on the ToSVG pattern of
// other_examples/99dc30a3_wolever-nfa2regex__nfa2regex.go.go, retargeted to
// PNG since that's the format the CLI's dot command writes).
func RenderPNG(a *FA) ([]byte, error) {
	return RenderPNGWith(a, "dot")
}

// RenderPNGWith is RenderPNG with an explicit dot binary path or name,
// for callers that load it from configuration. dotBinary must be on PATH
// or be an executable path; its stderr is captured and folded into the
// returned error so a missing Graphviz install produces an actionable
// message instead of a bare exit-status error.
func RenderPNGWith(a *FA, dotBinary string) ([]byte, error) {
	dot := Dot(a)

	cmd := exec.Command(dotBinary, "-Tpng")
	cmd.Stdin = bytes.NewReader([]byte(dot))

	var out, stderr bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("running dot -Tpng: %w: %s", err, stderr.String())
	}
	return out.Bytes(), nil
}
