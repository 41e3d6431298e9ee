package main

import (
	"fmt"
	"math/rand"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"

	"github.com/ycyang0508/regbridge/bridge"
	"github.com/ycyang0508/regbridge/monitoring"
	"github.com/ycyang0508/regbridge/regfile"
	"github.com/ycyang0508/regbridge/sim"
	"github.com/ycyang0508/regbridge/tb"
	"github.com/ycyang0508/regbridge/trace"
)

var runFlags = struct {
	numOps      int
	seed        int64
	latency     int
	addrWidth   int
	dataWidth   int
	resetCycles int
	tracePath   string
	monitor     bool
	port        int
	openBrowser bool
}{}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a randomized simulation against a register-file backend.",
	RunE:  runSimulation,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().IntVar(&runFlags.numOps, "ops", 100,
		"number of bus operations to issue")
	runCmd.Flags().Int64Var(&runFlags.seed, "seed", 0,
		"seed for the operation randomizer")
	runCmd.Flags().IntVar(&runFlags.latency, "latency", 1,
		"backend response latency in cycles")
	runCmd.Flags().IntVar(&runFlags.addrWidth, "addr-width", 32,
		"bus address width in bits")
	runCmd.Flags().IntVar(&runFlags.dataWidth, "data-width", 32,
		"bus data width in bits")
	runCmd.Flags().IntVar(&runFlags.resetCycles, "reset-cycles", 2,
		"cycles to hold reset at the start of the simulation")
	runCmd.Flags().StringVar(&runFlags.tracePath, "trace", "",
		"record transactions into a SQLite file at this path")
	runCmd.Flags().BoolVar(&runFlags.monitor, "monitor", false,
		"start the monitoring server")
	runCmd.Flags().IntVar(&runFlags.port, "port", 0,
		"port of the monitoring server, 0 picks a random port")
	runCmd.Flags().BoolVar(&runFlags.openBrowser, "open-browser", false,
		"open the monitoring page in the default browser")
}

// loadEnvDefaults lets a .env file provide defaults for flags that the user
// did not set on the command line.
func loadEnvDefaults(cmd *cobra.Command) {
	_ = godotenv.Load()

	if !cmd.Flags().Changed("trace") {
		if v, ok := os.LookupEnv("REGBRIDGE_TRACE"); ok {
			runFlags.tracePath = v
		}
	}

	if !cmd.Flags().Changed("port") {
		if v, ok := os.LookupEnv("REGBRIDGE_MONITOR_PORT"); ok {
			if port, err := strconv.Atoi(v); err == nil {
				runFlags.port = port
			}
		}
	}
}

func runSimulation(cmd *cobra.Command, _ []string) error {
	loadEnvDefaults(cmd)

	engine := sim.NewSerialEngine()

	system := tb.MakeBuilder().
		WithEngine(engine).
		WithRegMap(demoRegMap()).
		WithAddrWidth(runFlags.addrWidth).
		WithDataWidth(runFlags.dataWidth).
		WithBackendLatency(runFlags.latency).
		WithResetCycles(runFlags.resetCycles).
		WithOpQueueCap(runFlags.numOps + 1).
		Build("RegBridge")

	if runFlags.tracePath != "" {
		recorder := trace.NewRecorder(runFlags.tracePath)
		tracer := trace.NewTracer(recorder)
		trace.CollectTrace(system.Bridge, tracer)
	}

	var bar *monitoring.ProgressBar
	if runFlags.monitor {
		monitor := monitoring.NewMonitor()
		if runFlags.port != 0 {
			monitor = monitor.WithPortNumber(runFlags.port)
		}
		if runFlags.openBrowser {
			monitor = monitor.WithBrowserOpen()
		}

		monitor.RegisterEngine(engine)
		monitor.RegisterComponent(system)
		monitor.RegisterComponent(system.Bridge)
		monitor.RegisterComponent(system.Master)

		bar = monitor.CreateProgressBar("bus operations",
			uint64(runFlags.numOps))
		system.Bridge.AcceptHook(&progressHook{bar: bar})

		monitor.StartServer()
	}

	enqueueRandomOps(system)

	system.TickNow()

	err := engine.Run()
	if err != nil {
		return err
	}

	printSummary(system, engine)

	atexit.Exit(0)

	return nil
}

func demoRegMap() *regfile.RegMap {
	m := regfile.NewRegMap()

	m.AddRegister("ctrl", 0x0, regfile.AccessRW)
	m.AddRegister("status", 0x4, regfile.AccessRO)
	m.AddRegister("cmd", 0x8, regfile.AccessWO)
	m.AddRegisterArray("chan", 0x10, 4, 0x8, regfile.AccessRW)
	m.AddMemory("buf", 0x100, 64, 4)

	return m
}

func enqueueRandomOps(system *tb.System) {
	r := rand.New(rand.NewSource(runFlags.seed))

	addrs := []uint64{0x0, 0x10, 0x18, 0x20, 0x28}
	for i := uint64(0); i < 64; i++ {
		addrs = append(addrs, 0x100+i*4)
	}

	for i := 0; i < runFlags.numOps; i++ {
		op := tb.Op{
			IsWrite: r.Intn(2) == 0,
			Address: addrs[r.Intn(len(addrs))],
			Data:    r.Uint64(),
			Idle:    r.Intn(4),
		}

		// A few operations target unmapped addresses so that the error
		// path is exercised.
		if r.Intn(20) == 0 {
			op.Address = 0xF000
		}

		system.Master.Enqueue(op)
	}
}

func printSummary(system *tb.System, engine sim.Engine) {
	completions := system.Master.Completions()

	numErr := 0
	numWrite := 0
	for _, c := range completions {
		if c.Err {
			numErr++
		}
		if c.Op.IsWrite {
			numWrite++
		}
	}

	lastCycle := uint64(0)
	if len(completions) > 0 {
		lastCycle = completions[len(completions)-1].Cycle
	}

	fmt.Printf("Completed %d operations (%d writes, %d reads, %d errors) "+
		"in %d cycles, %.9f seconds of simulated time.\n",
		len(completions), numWrite, len(completions)-numWrite, numErr,
		lastCycle, float64(engine.CurrentTime()))
}

// progressHook advances a monitoring progress bar as the bridge accepts and
// completes transactions.
type progressHook struct {
	bar *monitoring.ProgressBar
}

func (h *progressHook) Func(ctx sim.HookCtx) {
	switch ctx.Pos {
	case bridge.HookPosTransAccept:
		h.bar.IncrementInProgress(1)
	case bridge.HookPosTransComplete:
		h.bar.MoveInProgressToFinished(1)
	}
}
