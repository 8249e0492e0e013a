package source

import (
	"bytes"
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/idilsaglam/littlelemon/internal/model"
)

func TestDecodePayloadCategoryShapes(t *testing.T) {
	doc := `{"menu":[
		{"id":1,"title":"Hummus","price":"8.99","category":{"title":"Appetizers"}},
		{"id":"b2","title":"Water","price":"1.99","category":"Beverages"}
	]}`
	got, err := DecodePayload(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("DecodePayload: %v", err)
	}
	want := []model.MenuItem{
		{ID: "1", Title: "Hummus", Price: "8.99", Category: "Appetizers"},
		{ID: "b2", Title: "Water", Price: "1.99", Category: "Beverages"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestDecodePayloadMalformed(t *testing.T) {
	for _, doc := range []string{
		``,
		`[]`,
		`{"menu": {}}`,
		`{"other": []}`,
		`{"menu":[{"title":"no id","price":"1.00","category":"X"}]}`,
		`{"menu":[{"id":1,"title":"bad cat","price":"1.00","category":3}]}`,
		`{"menu":[{"id":1,"title":"no cat","price":"1.00"}]}`,
		`{"menu":[{"id":1,"title":"null cat","price":"1.00","category":null}]}`,
		`{"menu":[{"id":1,"title":"empty cat","price":"1.00","category":{}}]}`,
	} {
		if _, err := DecodePayload(strings.NewReader(doc)); !errors.Is(err, ErrMalformed) {
			t.Errorf("DecodePayload(%q) err = %v, want ErrMalformed", doc, err)
		}
	}
}

func TestEncodePayloadRoundTrip(t *testing.T) {
	items := DefaultMenu()
	b, err := json.Marshal(EncodePayload(items))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(b, []byte(`"id":1,`)) {
		t.Errorf("numeric ids should encode as numbers: %s", b)
	}
	if !bytes.Contains(b, []byte(`"category":{"title":"Appetizers"}`)) {
		t.Errorf("category should be nested: %s", b)
	}
	got, err := DecodePayload(bytes.NewReader(b))
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, items) {
		t.Errorf("round trip changed items")
	}
}
