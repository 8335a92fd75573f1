package urls

// Repository is the project home, shown in the demo header.
const Repository = "github.com/muurk/segstrip"

// ReplayScripts points at the annotated example gesture script.
const ReplayScripts = "https://" + Repository + "/blob/main/examples/drag-and-tap.yaml"

// Issues is where bug reports go.
const Issues = "https://" + Repository + "/issues"
