package uri

import (
	"flag"
	"os"
	"reflect"
	"testing"

	jsoniter "github.com/json-iterator/go"
)

var updateGolden = flag.Bool("update", false, "regenerate golden test files")

var goldenJSON = jsoniter.ConfigCompatibleWithStandardLibrary

type goldenCase struct {
	Name     string   `json:"name"`
	Input    string   `json:"input"`
	Entities []Entity `json:"entities"`
}

const goldenPath = "../data/golden/uri.json"

func TestGolden(t *testing.T) {
	if *updateGolden {
		updateGoldenFile(t)
		return
	}

	data, err := os.ReadFile(goldenPath)
	if err != nil {
		if os.IsNotExist(err) {
			t.Skip("uri.json not found, run with -update to generate")
		}
		t.Fatalf("reading golden file: %v", err)
	}

	var cases []goldenCase
	if err := goldenJSON.Unmarshal(data, &cases); err != nil {
		t.Fatalf("parsing golden file: %v", err)
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.Name, func(t *testing.T) {
			t.Parallel()

			got := Extract(tc.Input)
			checkOffsets(t, tc.Input, got)
			if len(got) == 0 && len(tc.Entities) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tc.Entities) {
				t.Errorf("Extract(%q)\n got  %v\n want %v", tc.Input, got, tc.Entities)
			}
		})
	}
}

func updateGoldenFile(t *testing.T) {
	t.Helper()

	data, err := os.ReadFile(goldenPath)
	if err != nil {
		t.Fatalf("reading golden file for update: %v", err)
	}

	var cases []goldenCase
	if err := goldenJSON.Unmarshal(data, &cases); err != nil {
		t.Fatalf("parsing golden file for update: %v", err)
	}

	for i := range cases {
		cases[i].Entities = Extract(cases[i].Input)
		if cases[i].Entities == nil {
			cases[i].Entities = []Entity{}
		}
	}

	out, err := goldenJSON.MarshalIndent(cases, "", "  ")
	if err != nil {
		t.Fatalf("marshaling golden data: %v", err)
	}
	out = append(out, '\n')
	if err := os.WriteFile(goldenPath, out, 0o644); err != nil {
		t.Fatalf("writing golden file: %v", err)
	}
	t.Logf("updated %s with %d cases", goldenPath, len(cases))
}
