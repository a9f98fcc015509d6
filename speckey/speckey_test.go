// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package speckey_test

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/js-arias/ecosur/speckey"
)

var keyFile = `# color keys
key	color	comment
bird	0, 84, 119	all flying birds
Adelie penguin	251, 236, 93	
mammal	255, 165, 0	seals and whales
`

func TestRead(t *testing.T) {
	name := filepath.Join(t.TempDir(), "keys.tab")
	if err := os.WriteFile(name, []byte(keyFile), 0644); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	keys, err := speckey.Read(name)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ls := keys.Keys(); len(ls) != 3 {
		t.Errorf("keys: got %d, want 3", len(ls))
	}

	// name matching ignores case and extra spaces
	c, ok := keys.Color("  ADELIE  Penguin ")
	if !ok {
		t.Fatalf("expecting a color for %q", "Adelie penguin")
	}
	if c != (color.RGBA{251, 236, 93, 255}) {
		t.Errorf("color: got %v, want {251 236 93 255}", c)
	}

	if _, ok := keys.Color("Snow petrel"); ok {
		t.Errorf("expecting no color for an undefined key")
	}
}

func TestReadInvalid(t *testing.T) {
	tests := map[string]string{
		"no color field": "key\tcomment\nbird\tnone\n",
		"short color":    "key\tcolor\nbird\t10, 20\n",
		"bad value":      "key\tcolor\nbird\t10, 20, azure\n",
		"out of range":   "key\tcolor\nbird\t10, 20, 300\n",
		"empty key":      "key\tcolor\n\t10, 20, 30\n",
	}
	for n, data := range tests {
		name := filepath.Join(t.TempDir(), "keys.tab")
		if err := os.WriteFile(name, []byte(data), 0644); err != nil {
			t.Fatalf("%s: unexpected error: %v", n, err)
		}
		if _, err := speckey.Read(name); err == nil {
			t.Errorf("%s: expecting error", n)
		}
	}
}
