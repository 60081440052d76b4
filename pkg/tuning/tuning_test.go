package tuning

import (
	stderrors "errors"
	"testing"

	fluiderrors "github.com/go-drift/fluid/pkg/errors"
	"github.com/go-drift/fluid/pkg/gestures"
	"github.com/go-drift/fluid/pkg/physics"
)

func TestDefault(t *testing.T) {
	p := Default()
	if p.DecelerationRate != physics.DecelerationRateNormal {
		t.Errorf("DecelerationRate = %f", p.DecelerationRate)
	}
	if p.BounceResponse != physics.DefaultSpringBackResponse {
		t.Errorf("BounceResponse = %f", p.BounceResponse)
	}
	if p.Strategy() != gestures.StrategyRecurrence {
		t.Errorf("Strategy = %v", p.Strategy())
	}
}

func TestParse(t *testing.T) {
	data := []byte("deceleration_rate: 0.99\ntracker_strategy: lsq2\n")
	p, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if p.DecelerationRate != 0.99 {
		t.Errorf("DecelerationRate = %f, want 0.99", p.DecelerationRate)
	}
	if p.Strategy() != gestures.StrategyLSQ2 {
		t.Errorf("Strategy = %v, want lsq2", p.Strategy())
	}
	// Omitted fields keep their defaults.
	if p.BounceResponse != physics.DefaultSpringBackResponse {
		t.Errorf("BounceResponse = %f, want default", p.BounceResponse)
	}
}

func TestParseInvalidYAML(t *testing.T) {
	_, err := Parse([]byte("deceleration_rate: [not a number"))
	if err == nil {
		t.Fatal("Parse should fail on malformed YAML")
	}
	var fe *fluiderrors.Error
	if !stderrors.As(err, &fe) || fe.Kind != fluiderrors.KindTuning {
		t.Errorf("error = %v, want a KindTuning fluid error", err)
	}
}

func TestParseSanitizesOutOfRangeValues(t *testing.T) {
	data := []byte("deceleration_rate: 1.5\nbounce_response: -2\nrubber_band_coefficient: 9\ntracker_strategy: magic\n")
	p, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if p != Default() {
		t.Errorf("sanitized profile = %+v, want defaults", p)
	}
}
