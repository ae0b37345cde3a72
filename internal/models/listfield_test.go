package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestSplitListTrimsAndDropsEmpty(t *testing.T) {
	assert.Equal(t, CommaList{"pileta", "quincho"}, SplitList(" pileta , quincho ,, "))
	assert.Nil(t, SplitList(""))
	assert.Nil(t, SplitList(" , , "))
}

func TestCommaListBSONRoundTrip(t *testing.T) {
	type doc struct {
		Items CommaList `bson:"items"`
	}

	in := doc{Items: CommaList{"cochera", "patio", "asador"}}
	raw, err := bson.Marshal(in)
	require.NoError(t, err)

	// The stored shape is a single joined string.
	var stored struct {
		Items string `bson:"items"`
	}
	require.NoError(t, bson.Unmarshal(raw, &stored))
	assert.Equal(t, "cochera,patio,asador", stored.Items)

	var out doc
	require.NoError(t, bson.Unmarshal(raw, &out))
	assert.Equal(t, in.Items, out.Items)
}

func TestCommaListRejectsDelimiterInElement(t *testing.T) {
	type doc struct {
		Items CommaList `bson:"items"`
	}
	_, err := bson.Marshal(doc{Items: CommaList{"a,b"}})
	assert.Error(t, err)
}

func TestCommaListDecodesNull(t *testing.T) {
	type doc struct {
		Items CommaList `bson:"items"`
	}
	raw, err := bson.Marshal(bson.M{"items": nil})
	require.NoError(t, err)

	var out doc
	require.NoError(t, bson.Unmarshal(raw, &out))
	assert.Nil(t, out.Items)
}
