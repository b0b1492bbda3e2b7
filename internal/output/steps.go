package output

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// StepOutput is one key=value pair reported to the surrounding pipeline.
type StepOutput struct {
	Key   string
	Value string
}

// heredocDelimiter marks multiline values in the step output file.
const heredocDelimiter = "RELKIT_EOF"

// WriteStepOutputs reports outputs to the surrounding pipeline: appended to
// the file named by GITHUB_OUTPUT when set (the hosted-runner convention),
// printed to stdout otherwise (local runs).
func WriteStepOutputs(outputs []StepOutput) error {
	path := os.Getenv("GITHUB_OUTPUT")
	if path == "" {
		return writeStepOutputs(os.Stdout, outputs)
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening step output file: %w", err)
	}
	defer f.Close()

	if err := writeStepOutputs(f, outputs); err != nil {
		return fmt.Errorf("writing step outputs: %w", err)
	}
	return nil
}

// writeStepOutputs renders outputs in the runner's file format: plain
// key=value lines, with heredoc framing for multiline values.
func writeStepOutputs(w io.Writer, outputs []StepOutput) error {
	for _, o := range outputs {
		var err error
		if strings.ContainsAny(o.Value, "\r\n") {
			if strings.Contains(o.Value, heredocDelimiter) {
				return fmt.Errorf("step output %q: value contains the heredoc delimiter", o.Key)
			}
			_, err = fmt.Fprintf(w, "%s<<%s\n%s\n%s\n", o.Key, heredocDelimiter, o.Value, heredocDelimiter)
		} else {
			_, err = fmt.Fprintf(w, "%s=%s\n", o.Key, o.Value)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
