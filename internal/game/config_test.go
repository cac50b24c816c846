package game

import "testing"

func TestFromMapOverrides(t *testing.T) {
	c := FromMap(map[string]string{
		"starting_time":  "25.5",
		"reflection_cap": "3",
		"seed":           "-7",
	})
	if c.StartingTime != 25.5 || c.ReflectionCap != 3 || c.Seed != -7 {
		t.Fatalf("unexpected config %+v", c)
	}
}

func TestFromMapKeepsDefaultsOnBadInput(t *testing.T) {
	c := FromMap(map[string]string{
		"starting_time":  "-1",
		"reflection_cap": "zero",
		"seed":           "1.5",
	})
	if c != DefaultConfig() {
		t.Fatalf("config = %+v, want defaults", c)
	}
	if FromMap(nil) != DefaultConfig() {
		t.Fatal("nil map should yield defaults")
	}
}
