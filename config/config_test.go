package config

import (
	"reflect"
	"testing"

	"github.com/spf13/viper"
)

func Test_NewConfig_defaults(t *testing.T) {
	viper.Reset()

	got := NewConfig()
	want := defaults()
	if !reflect.DeepEqual(got, want) {
		t.Errorf("NewConfig() = %+v, want %+v", got, want)
	}
}

func Test_NewConfig_overridesFromViper(t *testing.T) {
	viper.Reset()
	viper.Set("orf.genetic-code", 1)
	viper.Set("orf.use-all-table-starts", true)
	viper.Set("orf.reverse-frames", []int{1, 2, 3})
	viper.Set("taxonomy.nodes-path", "/data/nodes.dmp")

	got := NewConfig()

	if got.ORF.GeneticCode != 1 {
		t.Errorf("ORF.GeneticCode = %d, want 1", got.ORF.GeneticCode)
	}
	if !got.ORF.UseAllTableStarts {
		t.Error("ORF.UseAllTableStarts = false, want true")
	}
	if !reflect.DeepEqual(got.ORF.ReverseFrames, []int{1, 2, 3}) {
		t.Errorf("ORF.ReverseFrames = %v, want [1 2 3]", got.ORF.ReverseFrames)
	}
	if got.Taxonomy.NodesPath != "/data/nodes.dmp" {
		t.Errorf("Taxonomy.NodesPath = %q, want /data/nodes.dmp", got.Taxonomy.NodesPath)
	}
	// unset fields keep their defaults
	if got.ORF.MinLength != defaults().ORF.MinLength {
		t.Errorf("ORF.MinLength = %d, want default %d", got.ORF.MinLength, defaults().ORF.MinLength)
	}
}
