package domain

import (
	"reflect"
	"testing"
)

func TestDecodeAlternates(t *testing.T) {
	tests := []struct {
		name    string
		session SessionAttributes
		want    []Alternate
	}{
		{
			name:    "missing key yields empty list",
			session: SessionAttributes{},
			want:    []Alternate{},
		},
		{
			name:    "nil session yields empty list",
			session: nil,
			want:    []Alternate{},
		},
		{
			name:    "garbage yields empty list",
			session: SessionAttributes{SessionKeyAlternates: "{not json"},
			want:    []Alternate{},
		},
		{
			name:    "json null yields empty list",
			session: SessionAttributes{SessionKeyAlternates: "null"},
			want:    []Alternate{},
		},
		{
			name: "preserves persisted order",
			session: SessionAttributes{
				SessionKeyAlternates: `[{"id":"2","title":"Second","artist":"B","imageUrl":"i2","url":"u2"},{"id":"1","title":"First","artist":"A","imageUrl":"i1","url":"u1"}]`,
			},
			want: []Alternate{
				{ID: "2", Title: "Second", Artist: "B", ImageURL: "i2", URL: "u2"},
				{ID: "1", Title: "First", Artist: "A", ImageURL: "i1", URL: "u1"},
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := DecodeAlternates(tc.session)
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("DecodeAlternates: got %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestEncodeAlternates(t *testing.T) {
	got, err := EncodeAlternates([]Alternate{{ID: "7", Title: "T", Artist: "A", ImageURL: "i", URL: "u"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := `[{"id":"7","title":"T","artist":"A","imageUrl":"i","url":"u"}]`
	if got != want {
		t.Fatalf("EncodeAlternates: got %s, want %s", got, want)
	}

	empty, err := EncodeAlternates(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if empty != "[]" {
		t.Fatalf("EncodeAlternates(nil): got %s, want []", empty)
	}
}
