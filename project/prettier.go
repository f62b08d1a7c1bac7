package project

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
)

// Prettify formats a generated artifact by piping it through prettier. The
// file name does not need to exist; its extension tells prettier which
// parser to use.
//
// The prettierd daemon is preferred when it is on PATH. Otherwise prettier
// is executed through the project's package manager. The formatted bytes are
// returned on success; any failure returns the error together with the
// process output so callers can fall back to the unformatted artifact.
func Prettify(ctx context.Context, content []byte, fileName string) ([]byte, error) {
	var cmd *exec.Cmd

	if _, err := exec.LookPath("prettierd"); err == nil {
		cmd = exec.CommandContext(ctx, "prettierd", fileName)
	} else {
		pm, ok := FromProject(".")
		if !ok {
			globalPM, err := FromGlobal()
			if err != nil {
				return nil, fmt.Errorf("formatting requires prettierd or a package manager: %w", err)
			}

			pm = globalPM
		}

		cmd = exec.CommandContext(ctx,
			pm.ExecutorName(), "prettier", "--stdin-filepath", fileName,
		)
	}

	cmd.Stdin = bytes.NewReader(content)

	var stdout, stderr bytes.Buffer

	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("prettier failed: %w: %s",
			err, bytes.TrimSpace(append(stdout.Bytes(), stderr.Bytes()...)),
		)
	}

	return stdout.Bytes(), nil
}
