package prometheus

import (
	"context"
	"time"

	"github.com/coderi421/activerecord/orm"
	"github.com/prometheus/client_golang/prometheus"
)

type MiddlewareBuilder struct {
	Namespace string
	Subsystem string
	Name      string
	Help      string
	// Registerer 为空的时候注册到 prometheus.DefaultRegisterer
	Registerer prometheus.Registerer
}

func (m MiddlewareBuilder) Build() orm.Middleware {
	vector := prometheus.NewSummaryVec(prometheus.SummaryOpts{
		Name:      m.Name,
		Subsystem: m.Subsystem,
		Namespace: m.Namespace,
		Help:      m.Help,
		Objectives: map[float64]float64{
			0.5:   0.01,
			0.75:  0.01,
			0.90:  0.01,
			0.99:  0.001,  // 99 线
			0.999: 0.0001, // 999 线
		},
	}, []string{"type", "table", "status"})

	reg := m.Registerer
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(vector)

	return func(next orm.Handler) orm.Handler {
		return func(ctx context.Context, qc *orm.QueryContext) *orm.QueryResult {
			// 开始时间
			startTime := time.Now()
			res := next(ctx, qc)
			status := "ok"
			if res.Err != nil {
				status = "error"
			}
			vector.WithLabelValues(qc.Type, qc.Table, status).
				Observe(float64(time.Since(startTime).Milliseconds()))
			return res
		}
	}
}
