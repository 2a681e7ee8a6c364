package api

import (
	"strings"

	"rewardshq/pkg/types"

	"github.com/buger/jsonparser"
)

// OK 状态码是否为 200
func (r *Response) OK() bool {
	return r.StatusCode == 200
}

// Data 返回 data 字段，不存在或为 null 时 ok 为 false
func (r *Response) Data() ([]byte, bool) {
	value, dataType, _, err := jsonparser.Get(r.Body, "data")
	if err != nil || dataType == jsonparser.Null || dataType == jsonparser.NotExist {
		return nil, false
	}
	return value, true
}

// Message 返回服务端 message 字段；校验错误时 message 可能是数组
func (r *Response) Message() string {
	value, dataType, _, err := jsonparser.Get(r.Body, "message")
	if err != nil {
		return ""
	}
	switch dataType {
	case jsonparser.String:
		s, err := jsonparser.ParseString(value)
		if err != nil {
			return string(value)
		}
		return s
	case jsonparser.Array:
		var parts []string
		jsonparser.ArrayEach(value, func(item []byte, itemType jsonparser.ValueType, _ int, _ error) {
			parts = append(parts, string(item))
		})
		return strings.Join(parts, "; ")
	default:
		return string(value)
	}
}

// String 读取字符串字段，不存在或类型不符时返回 fallback
func String(data []byte, fallback string, keys ...string) string {
	v, err := jsonparser.GetString(data, keys...)
	if err != nil {
		return fallback
	}
	return v
}

// Int 读取整数字段，兼容浮点写法
func Int(data []byte, fallback int64, keys ...string) int64 {
	if v, err := jsonparser.GetInt(data, keys...); err == nil {
		return v
	}
	if f, err := jsonparser.GetFloat(data, keys...); err == nil {
		return int64(f)
	}
	return fallback
}

// Float 读取浮点字段
func Float(data []byte, fallback float64, keys ...string) float64 {
	if f, err := jsonparser.GetFloat(data, keys...); err == nil {
		return f
	}
	return fallback
}

// Bool 读取布尔字段
func Bool(data []byte, fallback bool, keys ...string) bool {
	v, err := jsonparser.GetBoolean(data, keys...)
	if err != nil {
		return fallback
	}
	return v
}

// Scalar 读取字符串或数字字段的原始文本
func Scalar(data []byte, fallback string, keys ...string) string {
	value, dataType, _, err := jsonparser.Get(data, keys...)
	if err != nil {
		return fallback
	}
	switch dataType {
	case jsonparser.String:
		if s, err := jsonparser.ParseString(value); err == nil {
			return s
		}
		return string(value)
	case jsonparser.Number:
		return string(value)
	default:
		return fallback
	}
}

// eachObject 遍历 keys 指向的数组，路径不存在或不是数组时什么都不做
func eachObject(data []byte, fn func(item []byte), keys ...string) {
	value, dataType, _, err := jsonparser.Get(data, keys...)
	if err != nil || dataType != jsonparser.Array {
		return
	}
	jsonparser.ArrayEach(value, func(item []byte, itemType jsonparser.ValueType, _ int, _ error) {
		fn(item)
	})
}

// DecodeTasks 解析任务列表
func DecodeTasks(r *Response, fallbackName string) []types.Task {
	var tasks []types.Task
	eachObject(r.Body, func(item []byte) {
		tasks = append(tasks, types.Task{
			ID:          String(item, "", "_id"),
			Name:        String(item, fallbackName, "metadata", "name"),
			IsCompleted: Bool(item, false, "isCompleted"),
			IsCanClaim:  Bool(item, false, "isCanClaim"),
		})
	}, "data")
	return tasks
}

// DecodeCampaigns 解析活动列表（data.data）
func DecodeCampaigns(r *Response) []types.Campaign {
	var campaigns []types.Campaign
	eachObject(r.Body, func(item []byte) {
		campaigns = append(campaigns, types.Campaign{
			ID:    String(item, "", "_id"),
			Title: String(item, "", "title"),
		})
	}, "data", "data")
	return campaigns
}

// DecodeQuests 解析按活动分组的用户任务（data 为二维数组）
func DecodeQuests(r *Response) []types.Quest {
	var quests []types.Quest
	eachObject(r.Body, func(group []byte) {
		eachObject(group, func(item []byte) {
			quests = append(quests, types.Quest{
				ID:     String(item, "", "_id"),
				Name:   String(item, "", "name"),
				Status: Scalar(item, "", "status"),
			})
		})
	}, "data")
	return quests
}

// DecodeReferrals 解析邀请列表（data.data），缺少 _id 的记录也会返回
func DecodeReferrals(r *Response) []types.Referral {
	var referrals []types.Referral
	eachObject(r.Body, func(item []byte) {
		referrals = append(referrals, types.Referral{
			ID:        String(item, "", "_id"),
			FirstName: String(item, "", "user", "firstName"),
			LastName:  String(item, "", "user", "lastName"),
		})
	}, "data", "data")
	return referrals
}

// DecodeAchievements 解析一次性成就及其阶段目标
func DecodeAchievements(r *Response) []types.Achievement {
	var achievements []types.Achievement
	eachObject(r.Body, func(item []byte) {
		achievement := types.Achievement{
			ID:   String(item, "", "_id"),
			Name: String(item, "Unknown Achievement", "metadata", "name"),
		}
		eachObject(item, func(streak []byte) {
			if target := Scalar(streak, "", "target"); target != "" {
				achievement.Targets = append(achievement.Targets, target)
			}
		}, "metadata", "streak")
		achievements = append(achievements, achievement)
	}, "data")
	return achievements
}

// DecodeSpinBalance 解析转盘余额，data 缺失时 ok 为 false
func DecodeSpinBalance(r *Response) (types.SpinBalance, bool) {
	data, ok := r.Data()
	if !ok {
		return types.SpinBalance{}, false
	}
	return types.SpinBalance{NumberSpin: Int(data, 0, "numberSpin")}, true
}

// DecodeSpinReward 解析转盘奖励，data 缺失时 ok 为 false
func DecodeSpinReward(r *Response) (types.SpinReward, bool) {
	data, ok := r.Data()
	if !ok {
		return types.SpinReward{}, false
	}
	return types.SpinReward{
		Point: Int(data, 0, "point"),
		XP:    Int(data, 0, "xp"),
		USDT:  Float(data, 0, "usdt"),
	}, true
}
