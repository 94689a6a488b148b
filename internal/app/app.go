// Package app wires the pipeline stages into runnable back-office flows
// and drains the input feeds through them.
package app

import (
	"os"
	"path/filepath"
	"time"

	"github.com/yanun0323/errors"
	"github.com/yanun0323/logs"

	"main/internal/algo"
	"main/internal/booking"
	"main/internal/execution"
	"main/internal/fabric"
	"main/internal/gui"
	"main/internal/inquiry"
	"main/internal/journal"
	"main/internal/marketdata"
	"main/internal/model"
	"main/internal/model/enum"
	"main/internal/obs"
	"main/internal/ops"
	"main/internal/position"
	"main/internal/pricing"
	"main/internal/refdata"
	"main/internal/risk"
	"main/internal/streaming"
)

// Input feed file names under the configured input directory.
const (
	TradesFile     = "trades.txt"
	PricesFile     = "prices.txt"
	MarketDataFile = "marketdata.txt"
	InquiriesFile  = "inquiries.txt"
)

// Output journal file names under the configured output directory.
const (
	PositionsOut  = "position.txt"
	RiskOut       = "risk.txt"
	GuiOut        = "gui.txt"
	StreamingOut  = "streaming.txt"
	ExecutionsOut = "executions.txt"
	InquiriesOut  = "allinquiries.txt"
)

// Run wires the selected pipelines and drains each required feed exactly
// once, in trades, prices, market data, inquiries order. A nil clock means
// wall time. The first feed I/O error aborts the run; parse errors only
// skip their row.
func Run(cfg ops.Loaded, clock func() time.Time) error {
	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return errors.Wrap(err, "create output dir")
	}

	catalog := refdata.DefaultCatalog()
	stats := obs.NewCounters()
	in := func(name string) string { return filepath.Join(cfg.InputDir, name) }
	out := func(name string) string { return filepath.Join(cfg.OutputDir, name) }

	wantPositions := cfg.Enabled(ops.PipelinePositions)
	wantRisk := cfg.Enabled(ops.PipelineRisk)
	wantGUI := cfg.Enabled(ops.PipelineGUI)
	wantStreaming := cfg.Enabled(ops.PipelineStreaming)
	wantExecutions := cfg.Enabled(ops.PipelineExecutions)
	wantInquiries := cfg.Enabled(ops.PipelineInquiries)

	var subscribers []func() error

	// Trades drive both the position and risk pipelines through one
	// booking spine, so the feed is drained once.
	if wantPositions || wantRisk {
		trades := booking.NewService()
		positions := position.NewService(catalog.ProductIDs())
		trades.AddListener(fabric.AddFunc[model.Trade](positions.AddTrade))

		if wantPositions {
			positions.AddListener(journal.NewPositionJournal(out(PositionsOut), stats))
		}
		if wantRisk {
			risks := risk.NewService(catalog.ProductIDs(), cfg.Seed)
			positions.AddListener(fabric.AddFunc[model.Position](risks.AddPosition))
			risks.AddListener(journal.NewRiskJournal(out(RiskOut), risks, stats))
		}

		conn := booking.NewConnector(trades, catalog, in(TradesFile), stats)
		subscribers = append(subscribers, conn.Subscribe)
	}

	// Prices feed the throttled GUI sink and the streaming algo.
	if wantGUI || wantStreaming {
		prices := pricing.NewService()

		if wantGUI {
			guiSvc := gui.NewService(journal.NewGuiSink(out(GuiOut), stats), cfg.Throttle, clock)
			prices.AddListener(fabric.AddFunc[model.Price](guiSvc.OnMessage))
		}
		if wantStreaming {
			algoStreams := algo.NewStreamingService(cfg.Seed)
			prices.AddListener(fabric.AddFunc[model.Price](algoStreams.AddPrice))

			streams := streaming.NewService()
			algoStreams.AddListener(fabric.AddFunc[algo.Stream](func(st algo.Stream) {
				streams.PublishPrice(st.Stream)
			}))
			streams.AddListener(journal.NewStreamingJournal(out(StreamingOut), stats))
		}

		conn := pricing.NewConnector(prices, catalog, in(PricesFile), stats)
		subscribers = append(subscribers, conn.Subscribe)
	}

	// Order book depth feeds the execution algo.
	if wantExecutions {
		books := marketdata.NewService()
		algoExecs := algo.NewExecutionService(cfg.Seed)
		books.AddListener(fabric.AddFunc[model.OrderBook](algoExecs.AddOrderBook))

		execs := execution.NewService()
		algoExecs.AddListener(fabric.AddFunc[algo.Execution](func(ex algo.Execution) {
			execs.ExecuteOrder(ex.Order, enum.MarketBrokerTec)
		}))
		execs.AddListener(journal.NewExecutionJournal(out(ExecutionsOut), stats))

		conn := marketdata.NewConnector(books, catalog, in(MarketDataFile), stats)
		subscribers = append(subscribers, conn.Subscribe)
	}

	if wantInquiries {
		inquiries := inquiry.NewService()
		inquiries.AddListener(journal.NewInquiryJournal(out(InquiriesOut), stats))

		conn := inquiry.NewConnector(inquiries, catalog, in(InquiriesFile), stats)
		subscribers = append(subscribers, conn.Subscribe)
	}

	for _, subscribe := range subscribers {
		if err := subscribe(); err != nil {
			return err
		}
	}

	logs.Infof("run complete, %s", stats.Summary())
	return nil
}
