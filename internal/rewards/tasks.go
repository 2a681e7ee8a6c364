package rewards

import (
	"context"
	"net/http"

	"rewardshq/internal/api"
	"rewardshq/internal/auth"
	"rewardshq/pkg/types"
)

// taskCategories 依次处理的任务分类
var taskCategories = []struct {
	category types.TaskCategory
	label    string
}{
	{types.TaskCategoryPrimary, "Task"},
	{types.TaskCategoryBasic, "Basic Task"},
	{types.TaskCategoryPartner, "Partner Task"},
}

// Tasks 依次领取三类任务，返回所有尝试领取的任务 ID
func (s *Service) Tasks(ctx context.Context, session *auth.Session) ([]string, error) {
	if !requireSession(session) {
		return nil, nil
	}

	var attempted []string
	for _, c := range taskCategories {
		ids, err := s.claimCategory(ctx, session, c.category, c.label)
		attempted = append(attempted, ids...)
		if err != nil {
			return attempted, err
		}
	}
	return attempted, nil
}

// claimCategory 处理单个分类，每个任务之后都等待一次限速
func (s *Service) claimCategory(ctx context.Context, session *auth.Session, category types.TaskCategory, label string) ([]string, error) {
	log := session.Log().WithField("category", label)
	log.Infof("分类: %s", label)

	resp, err := s.client.Tasks(ctx, session.AccessToken(), category)
	if err != nil {
		log.Errorf("获取任务列表失败: %v", err)
		return nil, err
	}
	if !resp.OK() {
		log.Errorf("获取任务列表失败，状态码: %d", resp.StatusCode)
		return nil, nil
	}

	var attempted []string
	for _, task := range api.DecodeTasks(resp, "Unknown Task") {
		if task.Claimable() {
			attempted = append(attempted, task.ID)

			claim, err := s.client.ClaimTask(ctx, session.AccessToken(), category, task.ID)
			if err != nil {
				log.Errorf("领取任务 '%s' 失败: %v", task.Name, err)
				return attempted, err
			}

			success := claim.StatusCode == http.StatusOK || claim.StatusCode == http.StatusCreated
			if success {
				log.Infof("任务 '%s' 已完成", task.Name)
			} else {
				log.Errorf("任务 '%s' 领取失败，状态码: %d", task.Name, claim.StatusCode)
			}
			s.record(session, FeatureTask, task.ID, task.Name, claim.StatusCode, success)
		} else {
			log.Warnf("跳过任务 '%s'（已完成或不可领取）", task.Name)
		}

		if err := s.pacer.Wait(ctx); err != nil {
			return attempted, err
		}
	}
	return attempted, nil
}
