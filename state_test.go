package sketch

import (
	"testing"

	"github.com/gogpu/sketch/surface/record"
)

func stackCalls(rec *record.Surface) []string {
	return calls(rec, record.CmdSave, record.CmdRestore, record.CmdClipRect)
}

func TestPushPop(t *testing.T) {
	sk, rec := newRecorded(t, 200, 100)
	before := rec.Style()

	sk.Push()
	sk.Fill(Named("red"))
	sk.NoStroke()
	sk.RectMode(RectCenter)
	sk.StrokeWeight(5)
	if sk.Depth() != 1 {
		t.Fatalf("Depth() = %d, want 1", sk.Depth())
	}
	sk.Pop()

	if sk.Depth() != 0 {
		t.Errorf("Depth() = %d after pop, want 0", sk.Depth())
	}
	if got := rec.Style(); got != before {
		t.Errorf("style = %+v after pop, want %+v", got, before)
	}
	if got := sk.Config(); got != defaultConfig() {
		t.Errorf("config = %+v after pop, want defaults", got)
	}
	expectCalls(t, stackCalls(rec), []string{"save()", "restore()"})
}

func TestPopEmpty(t *testing.T) {
	sk, rec := newRecorded(t, 200, 100)
	sk.Pop()
	if rec.Len() != 0 {
		t.Errorf("empty Pop recorded %q", rec.Strings())
	}
}

func TestClipSequence(t *testing.T) {
	sk, rec := newRecorded(t, 200, 100)

	sk.Clip(10, 10, 50, 20)
	expectCalls(t, stackCalls(rec), []string{"save()", "clipRect(10,10,50,20)"})
	if got := sk.Config().Clip; got != (ClipRect{10, 10, 50, 20}) {
		t.Errorf("Clip = %+v", got)
	}

	rec.Reset()
	sk.Clip(0, 10, 0, 20)
	expectCalls(t, stackCalls(rec), []string{"restore()", "save()", "clipRect(0,10,200,20)"})

	rec.Reset()
	sk.Clip(5, 0, 20, 0)
	expectCalls(t, stackCalls(rec), []string{"restore()", "save()", "clipRect(5,0,20,100)"})

	rec.Reset()
	sk.Unclip()
	expectCalls(t, stackCalls(rec), []string{"restore()"})
	if !sk.Config().Clip.IsZero() {
		t.Errorf("Clip = %+v after Unclip, want zero", sk.Config().Clip)
	}
	if rec.Depth() != 0 {
		t.Errorf("surface depth = %d, want 0", rec.Depth())
	}

	rec.Reset()
	sk.Unclip()
	if got := stackCalls(rec); len(got) != 0 {
		t.Errorf("second Unclip = %q, want nothing", got)
	}
}

func TestClipScaled(t *testing.T) {
	sk, rec := newRecorded(t, 200, 100, WithScale(2))
	sk.Clip(-10, 5, 20, 10)
	expectCalls(t, stackCalls(rec), []string{"save()", "clipRect(180,10,40,20)"})
}

func TestClipKeepsStyle(t *testing.T) {
	sk, rec := newRecorded(t, 200, 100)
	sk.Clip(0, 0, 10, 10)
	sk.Fill(Named("red"))
	sk.StrokeWeight(4)
	want := rec.Style()

	sk.Clip(0, 0, 20, 20)
	if got := rec.Style(); got != want {
		t.Errorf("style = %+v after clip replacement, want %+v", got, want)
	}
	sk.Unclip()
	if got := rec.Style(); got != want {
		t.Errorf("style = %+v after unclip, want %+v", got, want)
	}
}

func TestClipPerPushLevel(t *testing.T) {
	sk, rec := newRecorded(t, 200, 100)
	sk.Clip(0, 0, 50, 50)
	sk.Push()
	if sk.Config().Clip != (ClipRect{0, 0, 50, 50}) {
		t.Errorf("pushed level should inherit the clip rect, got %+v", sk.Config().Clip)
	}
	sk.Clip(10, 10, 5, 5)
	if rec.Depth() != 3 {
		t.Errorf("surface depth = %d, want 3", rec.Depth())
	}

	rec.Reset()
	sk.Pop()
	expectCalls(t, stackCalls(rec), []string{"restore()", "restore()"})
	if rec.Depth() != 1 {
		t.Errorf("surface depth = %d after pop, want 1", rec.Depth())
	}
	if sk.Config().Clip != (ClipRect{0, 0, 50, 50}) {
		t.Errorf("outer clip = %+v", sk.Config().Clip)
	}
}

func TestSetDefaultsReleasesClip(t *testing.T) {
	sk, rec := newRecorded(t, 200, 100)
	sk.Clip(0, 0, 50, 50)
	sk.NoFill()
	rec.Reset()

	sk.SetDefaults()
	expectCalls(t, stackCalls(rec), []string{"restore()"})
	if rec.Depth() != 0 {
		t.Errorf("surface depth = %d, want 0", rec.Depth())
	}
	if got := sk.Config(); got != defaultConfig() {
		t.Errorf("config = %+v, want defaults", got)
	}
}
