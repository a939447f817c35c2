package jsonschema_test

import (
	"testing"

	"github.com/flowdsl/schemagen/jsonschema"
)

func marshal(t *testing.T, n *jsonschema.Node) string {
	t.Helper()
	b, err := n.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON: %v", err)
	}
	return string(b)
}

func TestNode_KeysKeepInsertionOrder(t *testing.T) {
	n := jsonschema.NewNode()
	n.Put("zeta", 1)
	n.Put("alpha", 2)
	n.Put("mid", 3)

	if got, want := marshal(t, n), `{"zeta":1,"alpha":2,"mid":3}`; got != want {
		t.Fatalf("got %s, want %s", got, want)
	}
}

func TestNode_OverwriteKeepsPosition(t *testing.T) {
	n := jsonschema.NewNode()
	n.Put("type", "object")
	n.Put("other", true)
	n.Put("type", "array")

	if got, want := marshal(t, n), `{"type":"array","other":true}`; got != want {
		t.Fatalf("got %s, want %s", got, want)
	}
}

func TestNode_ObjectAndArrayGetOrCreate(t *testing.T) {
	n := jsonschema.NewNode()
	n.Object("child").Put("a", 1)
	n.Object("child").Put("b", 2)
	n.Array("list").Append("x")
	n.Array("list").AppendObject().Put("y", 3)

	want := `{"child":{"a":1,"b":2},"list":["x",{"y":3}]}`
	if got := marshal(t, n); got != want {
		t.Fatalf("got %s, want %s", got, want)
	}
}

func TestNode_ClearAndRebuild(t *testing.T) {
	n := jsonschema.NewNode()
	n.Put("a", 1)
	n.Put("b", 2)

	keys := n.Keys()
	n.Clear()
	if n.Len() != 0 {
		t.Fatalf("Len after Clear = %d", n.Len())
	}
	for i := len(keys) - 1; i >= 0; i-- {
		n.Put(keys[i], i)
	}
	if got, want := marshal(t, n), `{"b":1,"a":0}`; got != want {
		t.Fatalf("got %s, want %s", got, want)
	}
}

func TestNode_EmptyMarshalsToBraces(t *testing.T) {
	if got := marshal(t, jsonschema.NewNode()); got != "{}" {
		t.Fatalf("got %s", got)
	}
	var a jsonschema.Array
	b, err := a.MarshalJSON()
	if err != nil || string(b) != "[]" {
		t.Fatalf("empty array marshal = %s, %v", b, err)
	}
}

func TestNode_NestedMarshalThroughEncoder(t *testing.T) {
	n := jsonschema.NewNode()
	n.Put("$schema", "id")
	items := n.Object("items")
	items.Put("maxProperties", 1)
	items.Object("definitions").Object("Foo").Put("type", "object")

	want := `{"$schema":"id","items":{"maxProperties":1,"definitions":{"Foo":{"type":"object"}}}}`
	if got := marshal(t, n); got != want {
		t.Fatalf("got %s, want %s", got, want)
	}
}
