package service

import (
	"context"
	"fmt"

	"farhatna/config"
	"farhatna/infras/otel"
	"farhatna/internal/domains/supplier/model"
	"farhatna/internal/domains/supplier/model/dto"
	"farhatna/internal/domains/supplier/repository"
	"farhatna/shared"
	"farhatna/shared/cache"
	"farhatna/shared/constant"
	gDto "farhatna/shared/dto"
	"farhatna/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetSupplier    = "supplier:get"
	cacheGetAllSupplier = "supplier:gets"
	cacheCountSupplier  = "supplier:count"
)

type Supplier interface {
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetSuppliersResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.SupplierResponse, error)
}

type serviceImpl struct {
	repo  repository.Supplier
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Supplier, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Supplier {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetSuppliersResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	req = gDto.NewestFirst(req, model.TableName)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllSupplier, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for suppliers")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count suppliers")

		return res, fmt.Errorf("failed to count suppliers: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get suppliers")

		return res, fmt.Errorf("failed to get suppliers: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save suppliers to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountSupplier, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for supplier count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count suppliers")

		return res, fmt.Errorf("failed to count suppliers: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save supplier count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.SupplierResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetSupplier, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for supplier")

		return res, nil
	}

	supplier, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get supplier")

		return res, fmt.Errorf("failed to get supplier: %w", err)
	}

	if supplier.ID == constant.Empty {
		return res, failure.NotFound("supplier not found") // nolint:wrapcheck
	}

	res.FromModel(supplier)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save supplier to cache")
		}
	}()

	return res, nil
}
