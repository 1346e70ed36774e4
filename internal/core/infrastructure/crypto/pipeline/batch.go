package pipeline

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/weisyn/keyaddr/pkg/types"
)

// DeriveBatch 并发推导一组 Secret
//
// 参数：
//   - ctx: 只约束整个批次；单次推导不会阻塞
//   - secrets: 输入种子
//   - workers: 并发数，<=0 使用默认值
//
// 返回：
//   - []*types.DerivationResult: 与输入顺序一一对应
//   - error: 任一推导失败或 ctx 取消时返回，不返回部分结果
func (s *Service) DeriveBatch(ctx context.Context, secrets []types.Secret, workers int) ([]*types.DerivationResult, error) {
	if workers <= 0 {
		workers = s.workers
	}
	if workers > len(secrets) && len(secrets) > 0 {
		workers = len(secrets)
	}

	runID := uuid.NewString()
	start := s.clock.Now()
	results := make([]*types.DerivationResult, len(secrets))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i := range secrets {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			result, err := s.Derive(secrets[i])
			if err != nil {
				return fmt.Errorf("第 %d 个种子推导失败: %w", i, err)
			}
			results[i] = result
			return nil
		})
	}

	err := g.Wait()
	if ctxErr := ctx.Err(); ctxErr != nil {
		// 调用方取消优先于工作协程返回的错误
		s.metrics.observeFailure(reasonCanceled)
		s.logBatchFailure(runID, len(secrets), ctxErr)
		return nil, fmt.Errorf("批量推导已取消: %w", ctxErr)
	}
	if err != nil {
		s.logBatchFailure(runID, len(secrets), err)
		return nil, err
	}

	elapsed := s.clock.Since(start)
	s.metrics.observeBatch(len(secrets), elapsed.Seconds())
	if s.logger != nil {
		s.logger.With("run_id", runID).Infof("批量推导完成: count=%d workers=%d deriver=%s elapsed=%s",
			len(secrets), workers, s.deriver.Name(), elapsed)
	}
	return results, nil
}

func (s *Service) logBatchFailure(runID string, count int, err error) {
	if s.logger == nil {
		return
	}
	s.logger.With("run_id", runID).Warnf("批量推导失败: count=%d err=%v", count, err)
}
