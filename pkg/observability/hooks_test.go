package observability

import (
	"context"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	// Conversion hooks
	c := NoopConversionHooks{}
	c.OnDecodeStart(ctx, "schema.json")
	c.OnDecodeComplete(ctx, "schema.json", 42, time.Second, nil)
	c.OnEmitStart(ctx, 42)
	c.OnEmitComplete(ctx, 2048, time.Second, nil)
	c.OnGraphStart(ctx, 42)
	c.OnGraphComplete(ctx, 40, 65, time.Second, nil)
	c.OnRenderStart(ctx, []string{"svg"})
	c.OnRenderComplete(ctx, []string{"svg"}, time.Second, nil)

	// Artifact hooks
	a := NoopArtifactHooks{}
	a.OnArtifactWritten(ctx, "svg", "schema.svg", 1024)
	a.OnArtifactFailed(ctx, "pdf", "schema.pdf", nil)

	// Server hooks
	s := NoopServerHooks{}
	s.OnRequest(ctx, "GET", "/schema.html")
	s.OnResponse(ctx, "GET", "/schema.html", 200, time.Second)
}

func TestGlobalHooksRegistry(t *testing.T) {
	// Reset to known state
	Reset()

	// Verify defaults are noop
	if _, ok := Conversion().(NoopConversionHooks); !ok {
		t.Error("Conversion() should return NoopConversionHooks by default")
	}
	if _, ok := Artifacts().(NoopArtifactHooks); !ok {
		t.Error("Artifacts() should return NoopArtifactHooks by default")
	}
	if _, ok := Server().(NoopServerHooks); !ok {
		t.Error("Server() should return NoopServerHooks by default")
	}

	// Set custom hooks
	customConversion := &testConversionHooks{}
	SetConversionHooks(customConversion)
	if Conversion() != customConversion {
		t.Error("SetConversionHooks should set custom hooks")
	}

	customArtifacts := &testArtifactHooks{}
	SetArtifactHooks(customArtifacts)
	if Artifacts() != customArtifacts {
		t.Error("SetArtifactHooks should set custom hooks")
	}

	customServer := &testServerHooks{}
	SetServerHooks(customServer)
	if Server() != customServer {
		t.Error("SetServerHooks should set custom hooks")
	}

	// Reset and verify
	Reset()
	if _, ok := Conversion().(NoopConversionHooks); !ok {
		t.Error("Reset() should restore NoopConversionHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()

	custom := &testConversionHooks{}
	SetConversionHooks(custom)

	// Setting nil should be ignored
	SetConversionHooks(nil)

	if Conversion() != custom {
		t.Error("SetConversionHooks(nil) should be ignored")
	}

	Reset()
}

// Test implementations
type testConversionHooks struct{ NoopConversionHooks }
type testArtifactHooks struct{ NoopArtifactHooks }
type testServerHooks struct{ NoopServerHooks }
