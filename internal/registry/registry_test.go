package registry

import (
	"testing"

	"github.com/vovakirdan/fruit-catcher/internal/core"
)

type stubGame struct{ id string }

func (g *stubGame) ID() string                           { return g.id }
func (g *stubGame) Title() string                        { return "Stub " + g.id }
func (g *stubGame) Reset(core.RuntimeConfig)             {}
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(core.Canvas)                   {}
func (g *stubGame) State() core.GameState                { return core.GameState{} }
func (g *stubGame) LogicalSize() (int, int)              { return 10, 10 }

func TestRegisterCreateList(t *testing.T) {
	Register("zz-stub", func() Game { return &stubGame{id: "zz-stub"} })
	Register("aa-stub", func() Game { return &stubGame{id: "aa-stub"} })

	if !Exists("zz-stub") || !Exists("aa-stub") {
		t.Fatal("registered games should exist")
	}
	if Exists("missing") {
		t.Error("unregistered game should not exist")
	}

	g, err := Create("aa-stub")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.ID() != "aa-stub" {
		t.Errorf("Create() returned %q", g.ID())
	}

	if _, err := Create("missing"); err == nil {
		t.Error("Create() of unknown id should fail")
	}

	list := List()
	var idxA, idxZ = -1, -1
	for i, info := range list {
		switch info.ID {
		case "aa-stub":
			idxA = i
			if info.Title != "Stub aa-stub" {
				t.Errorf("title = %q", info.Title)
			}
		case "zz-stub":
			idxZ = i
		}
	}
	if idxA < 0 || idxZ < 0 || idxA > idxZ {
		t.Errorf("List() not sorted or incomplete: %+v", list)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("dup-stub", func() Game { return &stubGame{id: "dup-stub"} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("dup-stub", func() Game { return &stubGame{id: "dup-stub"} })
}
