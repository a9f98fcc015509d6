// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package speckey implements a simple color key
// for species and taxonomic classes,
// used when drawing observation points.
package speckey

import (
	"encoding/csv"
	"errors"
	"fmt"
	"image/color"
	"io"
	"os"
	"strconv"
	"strings"
)

// Keys stores the color values
// for a species or class name.
type Keys struct {
	color map[string]color.Color
}

// Color returns the color associated with a given name.
// If no color is defined for the name,
// it will return transparent black.
func (k *Keys) Color(name string) (color.Color, bool) {
	name = canon(name)
	c, ok := k.color[name]
	if !ok {
		return color.RGBA{0, 0, 0, 0}, false
	}
	return c, true
}

// Keys returns the defined key names.
func (k *Keys) Keys() []string {
	keys := make([]string, 0, len(k.color))
	for n := range k.color {
		keys = append(keys, n)
	}
	return keys
}

func canon(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), " "))
}

// Read reads a key file used to define the colors
// for species or class names.
//
// A key file is a tab-delimited file
// with the following required columns:
//
//	-key	the species or class name
//	-color	an RGB value separated by commas,
//		for example "125,132,148".
//
// Any other columns, will be ignored.
// Here is an example of a key file:
//
//	key	color	comment
//	bird	0, 84, 119	all flying birds
//	penguin	251, 236, 93
//	mammal	255, 165, 0	seals and whales
func Read(name string) (*Keys, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comma = '\t'
	r.Comment = '#'

	head, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("while reading header: %v", err)
	}
	fields := make(map[string]int, len(head))
	for i, h := range head {
		h = strings.ToLower(h)
		fields[h] = i
	}
	for _, h := range []string{"key", "color"} {
		if _, ok := fields[h]; !ok {
			return nil, fmt.Errorf("expecting field %q", h)
		}
	}

	keys := &Keys{
		color: make(map[string]color.Color),
	}

	for {
		row, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		ln, _ := r.FieldPos(0)
		if err != nil {
			return nil, fmt.Errorf("on row %d: %v", ln, err)
		}

		f := "key"
		k := canon(row[fields[f]])
		if k == "" {
			return nil, fmt.Errorf("on row %d: field %q: empty key", ln, f)
		}

		f = "color"
		val := strings.Split(row[fields[f]], ",")
		if len(val) != 3 {
			return nil, fmt.Errorf("on row %d: field %q: found %d values, want 3", ln, f, len(val))
		}

		red, err := strconv.Atoi(strings.TrimSpace(val[0]))
		if err != nil {
			return nil, fmt.Errorf("on row %d: field %q [red value]: %v", ln, f, err)
		}
		if red > 255 {
			return nil, fmt.Errorf("on row %d: field %q [red value]: invalid value %d", ln, f, red)
		}
		green, err := strconv.Atoi(strings.TrimSpace(val[1]))
		if err != nil {
			return nil, fmt.Errorf("on row %d: field %q [green value]: %v", ln, f, err)
		}
		if green > 255 {
			return nil, fmt.Errorf("on row %d: field %q [green value]: invalid value %d", ln, f, green)
		}
		blue, err := strconv.Atoi(strings.TrimSpace(val[2]))
		if err != nil {
			return nil, fmt.Errorf("on row %d: field %q [blue value]: %v", ln, f, err)
		}
		if blue > 255 {
			return nil, fmt.Errorf("on row %d: field %q [blue value]: invalid value %d", ln, f, blue)
		}

		keys.color[k] = color.RGBA{uint8(red), uint8(green), uint8(blue), 255}
	}
	return keys, nil
}
