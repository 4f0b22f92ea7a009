package output

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"magmerge/internal/frame"
	"magmerge/internal/mag"
)

func TestTSVHeader_Stable(t *testing.T) {
	const want = "mag_id\tgenome_size\tbin_score\trelative_abundance\tDomain\tPhylum\tClass\tOrder\tFamily\tGenus\tSpecies\tclosest_reference_genome_id\tclosest_reference_genome_ani"
	if TSVHeader != want {
		t.Fatalf("TSVHeader changed:\n got:  %q\n want: %q", TSVHeader, want)
	}
}

func TestFormats_Stable(t *testing.T) {
	if FormatTSV != "tsv" || FormatCSV != "csv" || FormatJSON != "json" || FormatJSONL != "jsonl" || FormatYAML != "yaml" {
		t.Fatalf("output format constants changed")
	}
	assert.NoError(t, ValidateFormat("yaml"))
	assert.Error(t, ValidateFormat("text"))
}

func TestToAPI(t *testing.T) {
	r := mag.Record{MagID: "bin1", GenomeSize: 300, ClosestReferenceGenomeID: "GCF_1", ClosestReferenceGenomeANI: 99.9}
	a := ToAPI(r)
	assert.Equal(t, "GCF_1", a.ClosestReferenceGenomeID)
	assert.Equal(t, 300.0, float64(a.GenomeSize))
	assert.NotNil(t, ToAPIList(nil))
}

func TestToAPINonFiniteEncodesNull(t *testing.T) {
	r := mag.Record{MagID: "bin1", BinScore: math.Inf(1), RelativeAbundance: 0.5}
	b, err := json.Marshal(ToAPI(r))
	require.NoError(t, err)
	var m map[string]any
	require.NoError(t, json.Unmarshal(b, &m))
	assert.Nil(t, m["bin_score"])
	assert.Equal(t, 0.5, m["relative_abundance"])
}

func TestFrameRecordsKeepColumnOrder(t *testing.T) {
	f := frame.New("contig", "bin_score", "bin")
	f.Append(frame.Str("c1"), frame.Null, frame.Str("10"))

	got := FrameRecords(f)
	require.Len(t, got, 1)

	b, err := json.Marshal(got[0])
	require.NoError(t, err)
	assert.Equal(t, `{"contig":"c1","bin_score":null,"bin":"10"}`, string(b))

	y, err := yaml.Marshal(got)
	require.NoError(t, err)
	var doc yaml.Node
	require.NoError(t, yaml.Unmarshal(y, &doc))
	row := doc.Content[0].Content[0]
	require.Len(t, row.Content, 6)
	assert.Equal(t, []string{"contig", "bin_score", "bin"},
		[]string{row.Content[0].Value, row.Content[2].Value, row.Content[4].Value})
	assert.Equal(t, "!!null", row.Content[3].Tag)
	assert.Equal(t, "!!str", row.Content[5].Tag, "numeric-looking cells stay strings")

	assert.NotNil(t, FrameRecords(frame.Frame{}))
}
