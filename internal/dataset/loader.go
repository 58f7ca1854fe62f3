package dataset

import (
	log "log/slog"
	"sync"
	"time"
)

// Loader 进程内只生成一次样例数据
type Loader struct {
	cfg  FixtureConfig
	once sync.Once
	ds   *Dataset
	err  error
}

func NewLoader(cfg FixtureConfig) *Loader {
	return &Loader{cfg: cfg}
}

// Load 首次调用时生成并校验数据集，之后返回同一结果
func (l *Loader) Load() (*Dataset, error) {
	l.once.Do(func() {
		start := time.Now()
		l.ds, l.err = Synthesize(l.cfg)
		if l.err != nil {
			return
		}
		log.Info("fixture dataset ready",
			"influencers", len(l.ds.influencers),
			"posts", len(l.ds.posts),
			"tracking", len(l.ds.tracking),
			"payouts", len(l.ds.payouts),
			"cost", time.Since(start).String(),
		)
	})
	return l.ds, l.err
}
