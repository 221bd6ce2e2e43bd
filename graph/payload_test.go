package graph

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/c360studio/semstreams/message"

	"github.com/uthealth/hpvco/vocabulary/hpvco"
)

func TestEntityPayloadValidate(t *testing.T) {
	p := &EntityPayload{}
	if err := p.Validate(); err == nil {
		t.Error("expected validation error for missing entity ID")
	}

	p.EntityID_ = ClassEntityID(hpvco.ClassCervicalCancer)
	if err := p.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}

func TestEntityPayloadRoundTrip(t *testing.T) {
	p := &EntityPayload{
		EntityID_: ClassEntityID(hpvco.ClassCervicalCancer),
		TripleData: []message.Triple{
			{Subject: "s", Predicate: hpvco.ClassLabel, Object: "cervical cancer", Source: PublishSource, Confidence: 1.0},
		},
		UpdatedAt: time.Now().UTC(),
	}

	data, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	var got EntityPayload
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if got.EntityID() != p.EntityID() {
		t.Errorf("entity ID = %q, want %q", got.EntityID(), p.EntityID())
	}
	if len(got.Triples()) != 1 || got.Triples()[0].Object != "cervical cancer" {
		t.Errorf("unexpected triples after round trip: %v", got.Triples())
	}
	if got.Schema() != EntityType {
		t.Errorf("Schema() = %v, want %v", got.Schema(), EntityType)
	}
}
