// Package main demonstrates guarded activations with caller-defined codes,
// structured errors and the observe helpers.
package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/next-trace/scg-core/erno"
	scgerror "github.com/next-trace/scg-core/error"
	"github.com/next-trace/scg-core/internal/logging"
	"github.com/next-trace/scg-core/observe"
	"github.com/next-trace/scg-core/try"
	"github.com/next-trace/scg-core/types"
)

const codeQuota = erno.UserBase + 1

type account struct {
	open    bool
	balance types.Int64
}

func withdraw(names *erno.Table, m *observe.Metrics, acct *account, raw string) error {
	var cause error

	code := m.Run("withdraw", func(f *try.Frame) {
		f.AssertState(acct.open)

		amount, err := strconv.ParseInt(raw, 10, 64)
		cause = err
		f.Assert(err == nil, erno.String)
		f.AssertRange(amount > 0)
		f.Assert(amount <= acct.balance, codeQuota)

		acct.balance -= amount
	})

	if code == erno.None {
		return nil
	}

	return scgerror.E(code,
		scgerror.WithTable(names),
		scgerror.WithCause(cause),
		scgerror.WithContext(map[string]any{"amount": raw}),
	)
}

func main() {
	log := logging.New("example", logging.Options{Level: "debug", NoColor: true}, os.Stderr)

	names := erno.NewTable()
	if err := names.Define(codeQuota, "quota", "balance too low"); err != nil {
		log.Fatal().Err(err).Msg("define codes")
	}

	m := observe.NewMetrics("example", names)
	reg := prometheus.NewRegistry()
	if err := m.Register(reg); err != nil {
		log.Fatal().Err(err).Msg("register metrics")
	}

	acct := &account{open: true, balance: 100}
	for _, raw := range []string{"40", "x", "-1", "500", "60"} {
		err := withdraw(names, m, acct, raw)

		var e *scgerror.Error
		if errors.As(err, &e) {
			log.Warn().Str("amount", raw).Str("name", e.Name()).Str("detail", e.Detail()).Err(err).Msg("withdraw failed")
			continue
		}
		log.Info().Str("amount", raw).Int64("balance", acct.balance).Msg("withdrew")
	}

	acct.open = false
	code := try.Run(func(f *try.Frame) {
		f.Propagate(scgerror.CodeOf(withdraw(names, m, acct, "1")))
	}, observe.Log(log, "close", names), observe.Trace(log, "close"))

	families, err := reg.Gather()
	if err != nil {
		log.Fatal().Err(err).Msg("gather metrics")
	}
	for _, mf := range families {
		fmt.Printf("%s: %d series\n", mf.GetName(), len(mf.GetMetric()))
	}
	fmt.Printf("final code %s, balance %d\n", code.String(), acct.balance)
}
