package opentelemetry

import (
	"context"

	"github.com/coderi421/activerecord/orm"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/coderi421/activerecord/orm/middlewares/opentelemetry"

type MiddlewareBuilder struct {
	Tracer trace.Tracer
}

func (m MiddlewareBuilder) Build() orm.Middleware {
	tracer := m.Tracer
	if tracer == nil {
		// 创建 tracer 实例
		tracer = otel.GetTracerProvider().Tracer(instrumentationName)
	}
	return func(next orm.Handler) orm.Handler {
		return func(ctx context.Context, qc *orm.QueryContext) *orm.QueryResult {
			// span 的名字例如 SELECT users
			ctx, span := tracer.Start(ctx, qc.Type+" "+qc.Table)
			defer span.End()

			span.SetAttributes(attribute.String("component", "orm"))
			span.SetAttributes(attribute.String("table", qc.Table))
			if qc.Query != nil {
				span.SetAttributes(attribute.String("sql", qc.Query.SQL))
			}

			res := next(ctx, qc)
			if res.Err != nil {
				span.RecordError(res.Err)
				span.SetStatus(codes.Error, res.Err.Error())
			}
			return res
		}
	}
}
