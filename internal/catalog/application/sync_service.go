// Package application 实现商品目录的应用服务
package application

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/wyfcoding/wheelmaster/internal/catalog/domain"
)

// RecordError 同步过程中单条记录的校验失败
type RecordError struct {
	Index int    `json:"index"`
	Name  string `json:"name,omitempty"`
	Err   string `json:"error"`
}

// SyncReport 一次目录同步的结果汇总
type SyncReport struct {
	Inserted int           `json:"inserted"`
	Updated  int           `json:"updated"`
	Skipped  int           `json:"skipped"`
	Errors   []RecordError `json:"errors,omitempty"`
}

// CatalogSyncService 将商品定义源调和进商品表
// 按唯一名称插入或更新，不做删除
type CatalogSyncService struct {
	repo domain.ProductRepository
}

// NewCatalogSyncService 创建目录同步服务实例
func NewCatalogSyncService(repo domain.ProductRepository) *CatalogSyncService {
	return &CatalogSyncService{repo: repo}
}

// Sync 按源顺序逐条处理商品定义
// 单条记录校验失败只跳过该条并计入报告，不中断整个同步；
// 存储层错误会中止同步并连同已累计的报告一起返回。
// 源中不存在的已有商品保持不动，更新不做变更检测。
func (s *CatalogSyncService) Sync(ctx context.Context, defs []domain.ProductDefinition) (*SyncReport, error) {
	report := &SyncReport{}

	for i := range defs {
		def := &defs[i]
		if err := def.Validate(); err != nil {
			report.Skipped++
			report.Errors = append(report.Errors, RecordError{Index: i, Name: def.Name, Err: err.Error()})
			slog.WarnContext(ctx, "catalog sync: record skipped", "index", i, "name", def.Name, "error", err)
			continue
		}

		created, err := s.upsert(ctx, def)
		if err != nil {
			return report, fmt.Errorf("failed to sync product %q: %w", def.Name, err)
		}
		if created {
			report.Inserted++
		} else {
			report.Updated++
		}
	}

	slog.InfoContext(ctx, "catalog sync completed",
		"inserted", report.Inserted,
		"updated", report.Updated,
		"skipped", report.Skipped,
	)
	return report, nil
}

// upsert 按唯一名称插入或更新一条商品，返回是否新建
func (s *CatalogSyncService) upsert(ctx context.Context, def *domain.ProductDefinition) (bool, error) {
	product := def.ToProduct()

	existing, err := s.repo.FindByName(ctx, product.Name)
	if err != nil {
		return false, err
	}
	if existing != nil {
		// 保留代理主键，引用该商品的订单不受影响
		product.ID = existing.ID
		product.CreatedAt = existing.CreatedAt
	}

	if err := s.repo.Save(ctx, product); err != nil {
		return false, err
	}
	return existing == nil, nil
}
