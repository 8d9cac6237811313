package javascript

import (
	"slices"
	"testing"
)

func TestSpecifiers(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{
			name:    "DefaultImport",
			content: `import utils from './utils';`,
			want:    []string{"./utils"},
		},
		{
			name:    "NamedImport",
			content: `import { todo, done } from "./todo.js";`,
			want:    []string{"./todo.js"},
		},
		{
			name:    "SideEffectImport",
			content: `import './polyfill';`,
			want:    []string{"./polyfill"},
		},
		{
			name:    "ReExport",
			content: "export * from './core';\nexport { user } from './user';",
			want:    []string{"./core", "./user"},
		},
		{
			name:    "Require",
			content: `const utils = require('./utils');`,
			want:    []string{"./utils"},
		},
		{
			name:    "DynamicImport",
			content: `const mod = await import('./lazy');`,
			want:    []string{"./lazy"},
		},
		{
			name:    "DynamicImportAtLineStart",
			content: `import('./lazy').then(run);`,
			want:    []string{"./lazy"},
		},
		{
			name: "SourceOrderWithDuplicates",
			content: `import a from './a';
const b = require('./b');
import './a';`,
			want: []string{"./a", "./b", "./a"},
		},
		{
			name:    "BareSpecifierKept",
			content: `import react from 'react';`,
			want:    []string{"react"},
		},
		{
			name:    "NoImports",
			content: "const x = 1;\nexport default x;",
			want:    nil,
		},
		{
			name:    "IndentedImport",
			content: "\timport a from './a';",
			want:    []string{"./a"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := specifiers(tt.content)
			if !slices.Equal(got, tt.want) {
				t.Errorf("specifiers() = %v, want %v", got, tt.want)
			}
		})
	}
}
