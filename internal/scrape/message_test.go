package scrape

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestWireFormat(t *testing.T) {
	data, err := json.Marshal(NewRequest())
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"GET_MEMBERS"}`, string(data))
}

func TestMembersPairsByIndex(t *testing.T) {
	resp := Response{
		Names:  []string{"A", "B", "C"},
		Images: []string{"a.png", "b.png"},
		Online: []bool{true},
	}

	members := resp.Members()
	require.Len(t, members, 3)

	assert.Equal(t, "a.png", members[0].AvatarRef)
	assert.Equal(t, "b.png", members[1].AvatarRef)
	assert.Empty(t, members[2].AvatarRef, "missing avatar index yields an empty avatar")

	require.NotNil(t, members[0].PresenceHint)
	assert.True(t, *members[0].PresenceHint)
	assert.Nil(t, members[1].PresenceHint)
}

func TestMembersIgnoresExtraImages(t *testing.T) {
	resp := Response{Names: []string{"A"}, Images: []string{"a.png", "b.png"}}
	assert.Len(t, resp.Members(), 1)
}

func TestDecodeResponse(t *testing.T) {
	resp, err := DecodeResponse([]byte(`{"names":["A","B"],"images":["x"],"online":[false,true]}`))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, resp.Names)
	assert.Equal(t, []bool{false, true}, resp.Online)

	_, err = DecodeResponse([]byte(`{"names":`))
	assert.Error(t, err)

	resp, err = DecodeResponse([]byte(`{}`))
	require.NoError(t, err)
	assert.True(t, resp.Empty())
}
