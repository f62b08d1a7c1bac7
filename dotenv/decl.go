package dotenv

import (
	"fmt"
	"strings"
)

// ProcessEnvDecl renders the ambient declaration aggregating every merged
// variable, sorted by name. Client-exposed variables are declared required
// because publicly exposed build-time variables must always be defined;
// everything else is optional.
func ProcessEnvDecl(vars []MergedEnvVar) string {
	var b strings.Builder

	b.WriteString("declare namespace NodeJS {\n\tinterface ProcessEnv {\n")

	for i, v := range vars {
		if i > 0 {
			b.WriteString("\n")
		}

		opt := "?"
		if v.IsClientExposed() {
			opt = ""
		}

		fmt.Fprintf(&b, "\t\t%s%s: string\n", v.Name, opt)
	}

	b.WriteString("\t}\n}\n")

	return b.String()
}
