// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"encoding/json"
	"testing"
)

func TestAgendaUnmarshal(t *testing.T) {
	tests := []struct {
		name string
		json string
		want []string
	}{
		{"array", `["09:00 - Keynote","12:00 - Lunch"]`, []string{"09:00 - Keynote", "12:00 - Lunch"}},
		{"single string", `"09:00 - Keynote"`, []string{"09:00 - Keynote"}},
		{"null", `null`, nil},
		{"empty array", `[]`, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a Agenda
			if err := json.Unmarshal([]byte(tt.json), &a); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if len(a) != len(tt.want) {
				t.Fatalf("got %d entries, want %d", len(a), len(tt.want))
			}
			for i := range a {
				if a[i] != tt.want[i] {
					t.Errorf("entry %d = %q, want %q", i, a[i], tt.want[i])
				}
			}
		})
	}
}

func TestAgendaUnmarshalRejectsObjects(t *testing.T) {
	var a Agenda
	if err := json.Unmarshal([]byte(`{"bad": true}`), &a); err == nil {
		t.Error("expected an error for a JSON object")
	}
}

func TestAgendaJoin(t *testing.T) {
	a := Agenda{"one", "two"}
	if got := a.Join(); got != "one\ntwo" {
		t.Errorf("Join() = %q", got)
	}
	var empty Agenda
	if got := empty.Join(); got != "" {
		t.Errorf("empty Join() = %q, want empty", got)
	}
}

func TestFlexIntUnmarshal(t *testing.T) {
	tests := []struct {
		name  string
		json  string
		want  int64
		set   bool
		fails bool
	}{
		{name: "number", json: `16`, want: 16, set: true},
		{name: "quoted string", json: `"25"`, want: 25, set: true},
		{name: "null", json: `null`, set: false},
		{name: "empty string", json: `""`, set: false},
		{name: "garbage", json: `"abc"`, fails: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var f FlexInt
			err := json.Unmarshal([]byte(tt.json), &f)
			if tt.fails {
				if err == nil {
					t.Fatal("expected an error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if f.Set != tt.set {
				t.Fatalf("Set = %v, want %v", f.Set, tt.set)
			}
			if f.Set && f.Value != tt.want {
				t.Errorf("Value = %d, want %d", f.Value, tt.want)
			}
		})
	}
}

func TestFlexIntMarshal(t *testing.T) {
	b, err := json.Marshal(FlexInt{Value: 16, Set: true})
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != "16" {
		t.Errorf("marshal set = %s, want 16", b)
	}

	b, err = json.Marshal(FlexInt{})
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != "null" {
		t.Errorf("marshal unset = %s, want null", b)
	}
}

func TestResolvedLocation(t *testing.T) {
	single := &Location{Name: "Palais Bourbon"}

	ev := EventData{Location: single}
	if got := ev.ResolvedLocation(); got != single {
		t.Error("single location should win")
	}

	// The single location takes precedence over the list.
	ev = EventData{Location: single, Locations: []Location{{Name: "Annex"}}}
	if got := ev.ResolvedLocation(); got.Name != "Palais Bourbon" {
		t.Errorf("got %q, want Palais Bourbon", got.Name)
	}

	ev = EventData{Locations: []Location{{Name: "Ceremony"}, {Name: "Reception"}}}
	if got := ev.ResolvedLocation(); got.Name != "Ceremony" {
		t.Errorf("got %q, want first of the list", got.Name)
	}

	ev = EventData{}
	if got := ev.ResolvedLocation(); got != nil {
		t.Error("no venue should resolve to nil")
	}
}

func TestCustomString(t *testing.T) {
	ev := EventData{CustomData: map[string]any{
		"hashtag": "#Mariage2026",
		"iban":    "FR7630006000011234567890189",
		"count":   float64(3),
	}}

	if got := ev.CustomString("hashtag"); got != "#Mariage2026" {
		t.Errorf("got %q", got)
	}
	if got := ev.CustomString("missing"); got != "" {
		t.Errorf("missing key = %q, want empty", got)
	}
	// Non-string values are treated as absent.
	if got := ev.CustomString("count"); got != "" {
		t.Errorf("non-string value = %q, want empty", got)
	}

	var empty EventData
	if got := empty.CustomString("hashtag"); got != "" {
		t.Errorf("nil map = %q, want empty", got)
	}
}

func TestDate(t *testing.T) {
	tests := []struct {
		name  string
		value string
		ok    bool
	}{
		{"rfc3339", "2026-12-24T18:30:00Z", true},
		{"datetime", "2026-12-24 18:30:00", true},
		{"date only", "2026-12-24", true},
		{"garbage", "soon", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev := EventData{EventDate: tt.value}
			d, ok := ev.Date()
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if ok && (d.Year() != 2026 || d.Month() != 12 || d.Day() != 24) {
				t.Errorf("parsed %v, want 2026-12-24", d)
			}
		})
	}
}
