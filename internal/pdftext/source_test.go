package pdftext

import (
	"reflect"
	"testing"
)

func TestSkipSet(t *testing.T) {
	tests := []struct {
		name      string
		pageCount int
		opts      Options
		want      map[int]bool
	}{
		{
			name:      "no skips",
			pageCount: 5,
			opts:      Options{},
			want:      map[int]bool{},
		},
		{
			name:      "skip first page",
			pageCount: 5,
			opts:      Options{SkipFirstPage: true},
			want:      map[int]bool{1: true},
		},
		{
			name:      "explicit pages",
			pageCount: 5,
			opts:      Options{SkipPages: []int{2, 4}},
			want:      map[int]bool{2: true, 4: true},
		},
		{
			name:      "negative counts from end",
			pageCount: 10,
			opts:      Options{SkipPages: []int{-1, -2}},
			want:      map[int]bool{10: true, 9: true},
		},
		{
			name:      "out of range ignored",
			pageCount: 3,
			opts:      Options{SkipPages: []int{0, 7, -9}},
			want:      map[int]bool{},
		},
		{
			name:      "first page and negatives combine",
			pageCount: 4,
			opts:      Options{SkipFirstPage: true, SkipPages: []int{-1}},
			want:      map[int]bool{1: true, 4: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := skipSet(tt.pageCount, tt.opts)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestJoinPages(t *testing.T) {
	pages := []Page{
		{Number: 2, Text: "Asset: Anything of value.\n"},
		{Number: 3, Text: "   "},
		{Number: 4, Text: "Bond: A debt security."},
	}

	want := "Asset: Anything of value.\n\nBond: A debt security."
	if got := JoinPages(pages); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
