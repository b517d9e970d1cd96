package control

import (
	"encoding/json"
	"testing"

	"github.com/frudas24/rotabox/internal/box"
)

// TestProtocol_Down verifies decoding a down message.
func TestProtocol_Down(t *testing.T) {
	var msg Message
	if err := json.Unmarshal([]byte(`{"t":"down","id":1,"box":"b1","target":"resize","handle":"se","x":0.5,"y":0.2,"units":"norm"}`), &msg); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if msg.T != MsgDown || msg.ID != 1 || msg.Box != "b1" || msg.Target != KindResize || msg.Handle != "se" || msg.X != 0.5 || msg.Y != 0.2 || msg.Units != UnitsNorm {
		t.Fatalf("unexpected message: %+v", msg)
	}
}

// TestProtocol_Key verifies decoding a key message.
func TestProtocol_Key(t *testing.T) {
	var msg Message
	if err := json.Unmarshal([]byte(`{"t":"key","box":"b1","key":"ArrowLeft","shift":true,"phase":"up"}`), &msg); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if msg.T != MsgKey || msg.Key != box.KeyLeft || !msg.Shift || msg.Ctrl || msg.Phase != PhaseUp {
		t.Fatalf("unexpected message: %+v", msg)
	}
}

// TestProtocol_Container verifies decoding a container rect.
func TestProtocol_Container(t *testing.T) {
	var msg Message
	if err := json.Unmarshal([]byte(`{"t":"container","rect":{"x":10,"y":20,"w":500,"h":400}}`), &msg); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if msg.Rect == nil || msg.Rect.X != 10 || msg.Rect.W != 500 || msg.Rect.H != 400 {
		t.Fatalf("unexpected rect: %+v", msg.Rect)
	}
}

// TestProtocol_OutboundOmitsEmpty verifies optional outbound fields are dropped.
func TestProtocol_OutboundOmitsEmpty(t *testing.T) {
	active := false
	raw, err := json.Marshal(Outbound{T: OutDragOrResize, Box: "b1", Active: &active})
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if string(raw) != `{"t":"dragOrResize","box":"b1","active":false}` {
		t.Fatalf("unexpected json: %s", raw)
	}
}
