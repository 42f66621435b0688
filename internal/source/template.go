// SPDX-License-Identifier: Apache-2.0

package source

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"
)

// TemplateExt marks document files that need template preprocessing before
// structural parsing.
const TemplateExt = ".tpl"

// templateFuncs are the only functions available during preprocessing. No
// variables are passed into the template; the intended use is expanding
// environment lookups and fallbacks such as {{ env "X" | default "y" }}.
var templateFuncs = template.FuncMap{
	"env": os.Getenv,
	"default": func(fallback any, given ...any) any {
		if len(given) == 0 || given[0] == nil || given[0] == "" {
			return fallback
		}
		return given[0]
	},
}

// Render renders the template file at tmplPath into tmpDir and returns the
// path of the rendered file (the template name minus its extension).
func Render(tmplPath, tmpDir string) (string, error) {
	base := filepath.Base(tmplPath)
	if !strings.HasSuffix(base, TemplateExt) || len(base) <= len(TemplateExt) {
		return "", fmt.Errorf("invalid template file name: %s", tmplPath)
	}

	raw, err := os.ReadFile(tmplPath)
	if err != nil {
		return "", fmt.Errorf("read template: %w", err)
	}

	tmpl, err := template.New(base).Funcs(templateFuncs).Parse(string(raw))
	if err != nil {
		return "", fmt.Errorf("parse template: %w", err)
	}

	outPath := filepath.Join(tmpDir, strings.TrimSuffix(base, TemplateExt))
	out, err := os.Create(outPath)
	if err != nil {
		return "", fmt.Errorf("create rendered file: %w", err)
	}
	defer out.Close()

	if err = tmpl.Execute(out, nil); err != nil {
		return "", fmt.Errorf("render template: %w", err)
	}

	return outPath, nil
}
