package host

import (
	"fmt"
	"testing"

	"golang.org/x/sync/errgroup"

	"symforge/internal/arch"
	"symforge/internal/objfile"
)

func TestRegistryRecordsNotificationOrder(t *testing.T) {
	reg := NewRegistry()
	for _, name := range []string{"first", "second"} {
		b := objfile.NewBuilder(name)
		if _, err := b.Build(objfile.BuildContext{Events: reg}); err != nil {
			t.Fatalf("Build(%s): %v", name, err)
		}
	}
	got := reg.Objfiles()
	if len(got) != 2 || got[0].Name() != "first" || got[1].Name() != "second" {
		t.Fatalf("unexpected notification order: %v", got)
	}
	if _, ok := reg.Lookup("second"); !ok {
		t.Fatalf("lookup by name failed")
	}
	if _, ok := reg.Lookup("third"); ok {
		t.Fatalf("lookup of unknown name succeeded")
	}
}

func TestRegistrySelection(t *testing.T) {
	reg := NewRegistry()
	if reg.SelectedArchitecture() != nil {
		t.Fatalf("fresh registry must have no selection")
	}
	target := arch.PPC64()
	reg.Select(target)

	of, err := objfile.NewBuilder("bound").Build(objfile.BuildContext{Context: reg, Events: reg})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if of.Architecture() != target {
		t.Fatalf("selected architecture ignored: %v", of.Architecture())
	}

	reg.Select(nil)
	if reg.SelectedArchitecture() != nil {
		t.Fatalf("selection not cleared")
	}
}

func TestRegistryConcurrentPublish(t *testing.T) {
	reg := NewRegistry()
	var g errgroup.Group
	for i := 0; i < 8; i++ {
		i := i
		g.Go(func() error {
			b := objfile.NewBuilder(fmt.Sprintf("unit-%d", i))
			_, err := b.Build(objfile.BuildContext{Events: reg})
			return err
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatalf("parallel builds: %v", err)
	}
	if len(reg.Objfiles()) != 8 {
		t.Fatalf("expected 8 containers, got %d", len(reg.Objfiles()))
	}
}
