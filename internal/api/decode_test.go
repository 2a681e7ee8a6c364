package api

import (
	"testing"

	"rewardshq/pkg/types"

	"github.com/stretchr/testify/assert"
)

func TestDecodeTasks_Fallbacks(t *testing.T) {
	resp := &Response{StatusCode: 200, Body: []byte(`{"data":[
		{"_id":"t1","isCompleted":false,"isCanClaim":true,"metadata":{"name":"Follow X"}},
		{"_id":"t2","isCompleted":true,"isCanClaim":true},
		{"_id":"t3"}
	]}`)}

	tasks := DecodeTasks(resp, "Unknown Task")
	assert.Equal(t, []types.Task{
		{ID: "t1", Name: "Follow X", IsCompleted: false, IsCanClaim: true},
		{ID: "t2", Name: "Unknown Task", IsCompleted: true, IsCanClaim: true},
		{ID: "t3", Name: "Unknown Task"},
	}, tasks)
	assert.True(t, tasks[0].Claimable())
	assert.False(t, tasks[1].Claimable())
	assert.False(t, tasks[2].Claimable())
}

func TestDecodeTasks_NotAnArray(t *testing.T) {
	assert.Empty(t, DecodeTasks(&Response{Body: []byte(`{"data":{"oops":1}}`)}, "x"))
	assert.Empty(t, DecodeTasks(&Response{Body: []byte(`not json`)}, "x"))
}

func TestDecodeCampaignsAndQuests(t *testing.T) {
	campaigns := DecodeCampaigns(&Response{Body: []byte(`{"data":{"data":[{"_id":"c1","title":"Season 1"},{"title":"no id"}]}}`)})
	assert.Equal(t, []types.Campaign{{ID: "c1", Title: "Season 1"}, {Title: "no id"}}, campaigns)

	quests := DecodeQuests(&Response{Body: []byte(`{"data":[
		[{"_id":"q1","name":"Join","status":"PENDING"},{"_id":"q2","name":"Share","status":1}],
		[{"name":"broken"}]
	]}`)})
	assert.Equal(t, []types.Quest{
		{ID: "q1", Name: "Join", Status: "PENDING"},
		{ID: "q2", Name: "Share", Status: "1"},
		{Name: "broken"},
	}, quests)
}

func TestDecodeReferrals(t *testing.T) {
	referrals := DecodeReferrals(&Response{Body: []byte(`{"message":"ok","data":{"data":[
		{"_id":"r1","user":{"firstName":"Ann","lastName":"Lee"}},
		{"user":{"firstName":"Ghost"}}
	]}}`)})
	assert.Equal(t, []types.Referral{
		{ID: "r1", FirstName: "Ann", LastName: "Lee"},
		{FirstName: "Ghost"},
	}, referrals)
}

func TestDecodeAchievements(t *testing.T) {
	achievements := DecodeAchievements(&Response{Body: []byte(`{"data":[
		{"_id":"a1","metadata":{"name":"Login streak","streak":[{"target":3},{"target":"7"},{}]}},
		{"_id":"a2","metadata":{}}
	]}`)})
	assert.Equal(t, []types.Achievement{
		{ID: "a1", Name: "Login streak", Targets: []string{"3", "7"}},
		{ID: "a2", Name: "Unknown Achievement"},
	}, achievements)
}

func TestDecodeSpin(t *testing.T) {
	balance, ok := DecodeSpinBalance(&Response{Body: []byte(`{"data":{"numberSpin":4}}`)})
	assert.True(t, ok)
	assert.Equal(t, int64(4), balance.NumberSpin)

	balance, ok = DecodeSpinBalance(&Response{Body: []byte(`{"data":{}}`)})
	assert.True(t, ok)
	assert.Equal(t, int64(0), balance.NumberSpin)

	_, ok = DecodeSpinBalance(&Response{Body: []byte(`{"data":null}`)})
	assert.False(t, ok)
	_, ok = DecodeSpinBalance(&Response{Body: []byte(`<html>`)})
	assert.False(t, ok)

	reward, ok := DecodeSpinReward(&Response{Body: []byte(`{"data":{"point":100,"xp":5.0,"usdt":0.25}}`)})
	assert.True(t, ok)
	assert.Equal(t, types.SpinReward{Point: 100, XP: 5, USDT: 0.25}, reward)
}

func TestResponse_Message(t *testing.T) {
	assert.Equal(t, "Boost success", (&Response{Body: []byte(`{"message":"Boost success"}`)}).Message())
	assert.Equal(t, "a; b", (&Response{Body: []byte(`{"message":["a","b"]}`)}).Message())
	assert.Equal(t, "", (&Response{Body: []byte(`{}`)}).Message())
	assert.True(t, (&Response{StatusCode: 200}).OK())
	assert.False(t, (&Response{StatusCode: 201}).OK())
}
