package main

import (
	"bufio"
	"context"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/stockroomhq/console/internal/api"
	"github.com/stockroomhq/console/internal/console"
	"github.com/stockroomhq/console/internal/realtime"
	"github.com/stockroomhq/console/internal/session"
	"github.com/stockroomhq/console/pkg/config"
	"github.com/stockroomhq/console/pkg/logger"
	"github.com/stockroomhq/console/pkg/metrics"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "console"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "console",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	requestMetrics := metrics.NewRequestMetrics(registry)

	go serveDebug(cfg.Debug, registry, logg)

	client, err := api.New(cfg.API, logg, requestMetrics)
	if err != nil {
		logg.Error(context.Background(), "failed to create api client", err)
		os.Exit(1)
	}

	sessions, err := session.NewStore(cfg.Session)
	if err != nil {
		logg.Error(context.Background(), "failed to open session store", err)
		os.Exit(1)
	}

	ctx := logg.WithField(context.Background(), "env", cfg.App.Env)
	logg.Info(ctx, "starting console")

	// One reader serves both the command loop and delete confirmations so
	// neither swallows input buffered for the other.
	stdin := bufio.NewReader(os.Stdin)
	app := &app{
		cfg:      cfg,
		logg:     logg,
		client:   client,
		sessions: sessions,
		stdin:    stdin,
		renderer: console.NewTextRenderer(os.Stdout),
		prompter: console.NewTerminalPrompter(stdin, os.Stdout),
	}
	defer app.stopRealtime(ctx)

	if user, err := sessions.Load(); err != nil {
		logg.Error(ctx, "failed to load session", err)
	} else if user != nil {
		if err := app.openDashboard(ctx, *user); err != nil {
			logg.Warn(ctx, "stored session no longer usable")
		}
	}

	app.run(ctx)
}

func serveDebug(cfg config.DebugConfig, registry *prometheus.Registry, logg *logger.Logger) {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	if err := http.ListenAndServe(cfg.Addr, router); err != nil {
		logg.Error(context.Background(), "debug listener stopped", err)
	}
}

// app holds whichever controller is active for the signed-in role. admin and
// staff are mutually exclusive; both nil means the login screen.
type app struct {
	cfg      *config.Config
	logg     *logger.Logger
	client   *api.Client
	sessions *session.Store
	stdin    *bufio.Reader
	renderer console.Renderer
	prompter console.Prompter

	admin      *console.AdminController
	staff      *console.StaffController
	subscriber *realtime.Subscriber
}

func (a *app) openDashboard(ctx context.Context, user api.User) error {
	switch user.Role {
	case api.RoleAdmin:
		ctrl, err := console.NewAdmin(console.AdminParams{
			Backend:  a.client,
			Renderer: a.renderer,
			Prompter: a.prompter,
			Sessions: a.sessions,
			Logger:   a.logg,
			User:     user,
		})
		if err != nil {
			return err
		}
		a.admin = ctrl
		a.staff = nil
		if err := ctrl.Start(ctx); err != nil {
			return err
		}
		a.startRealtime(ctx, ctrl.Collections(), ctrl.HandleRealtime)
	case api.RoleStaff:
		ctrl, err := console.NewStaff(console.StaffParams{
			Backend:  a.client,
			Renderer: a.renderer,
			Sessions: a.sessions,
			Logger:   a.logg,
			User:     user,
		})
		if err != nil {
			return err
		}
		a.staff = ctrl
		a.admin = nil
		if err := ctrl.Start(ctx); err != nil {
			return err
		}
		a.startRealtime(ctx, ctrl.Collections(), ctrl.HandleRealtime)
	default:
		return fmt.Errorf("unknown role %q", user.Role)
	}
	return nil
}

func (a *app) startRealtime(ctx context.Context, collections []string, handler func(context.Context, string)) {
	if !a.cfg.Redis.Enabled() {
		return
	}
	a.stopRealtime(ctx)
	sub, err := realtime.New(ctx, a.cfg.Redis, a.cfg.Realtime, a.logg)
	if err != nil {
		a.logg.Warn(ctx, "realtime unavailable, continuing without live updates")
		return
	}
	if err := sub.Subscribe(ctx, collections, func(ctx context.Context, collection string, _ realtime.Event) {
		handler(ctx, collection)
	}); err != nil {
		a.logg.Error(ctx, "realtime subscribe failed", err)
		return
	}
	a.subscriber = sub
}

func (a *app) stopRealtime(ctx context.Context) {
	if a.subscriber == nil {
		return
	}
	if err := a.subscriber.Close(); err != nil {
		a.logg.Error(ctx, "closing realtime subscriber", err)
	}
	a.subscriber = nil
}

// run reads commands from stdin until EOF or quit. Commands mirror the
// dashboard surface: login, tab switching, search, record-sale, delete,
// logout.
func (a *app) run(ctx context.Context) {
	fmt.Println(`commands: login <user> <pass> | tab <name> | search <tab> <term> | sale <productID> <qty> <price> | delete <tab> <id> | read <id> | logout | quit`)
	for {
		line, err := a.stdin.ReadString('\n')
		fields := strings.Fields(line)
		if len(fields) > 0 {
			if fields[0] == "quit" {
				return
			}
			a.dispatch(ctx, fields)
		}
		if err != nil {
			return
		}
	}
}

func (a *app) dispatch(ctx context.Context, fields []string) {
	switch fields[0] {
	case "login":
		if len(fields) != 3 {
			fmt.Println("usage: login <user> <pass>")
			return
		}
		a.login(ctx, fields[1], fields[2])
	case "tab":
		if len(fields) != 2 {
			fmt.Println("usage: tab <name>")
			return
		}
		tab := console.Tab(fields[1])
		switch {
		case a.admin != nil:
			_ = a.admin.ActivateTab(ctx, tab)
		case a.staff != nil:
			_ = a.staff.ActivateTab(ctx, tab)
		default:
			fmt.Println("not signed in")
		}
	case "search":
		if len(fields) < 3 {
			fmt.Println("usage: search <tab> <term>")
			return
		}
		if a.admin == nil {
			fmt.Println("search requires the admin dashboard")
			return
		}
		_ = a.admin.Search(ctx, console.Tab(fields[1]), strings.Join(fields[2:], " "))
	case "sale":
		if len(fields) != 4 {
			fmt.Println("usage: sale <productID> <qty> <price>")
			return
		}
		if a.staff == nil {
			fmt.Println("sales are recorded from the staff console")
			return
		}
		_ = a.staff.RecordSale(ctx, console.SaleForm{
			ProductID: fields[1],
			Quantity:  fields[2],
			Price:     fields[3],
		})
	case "delete":
		if len(fields) != 3 {
			fmt.Println("usage: delete <tab> <id>")
			return
		}
		if a.admin == nil {
			fmt.Println("deleting requires the admin dashboard")
			return
		}
		id, err := strconv.Atoi(fields[2])
		if err != nil {
			fmt.Println("id must be numeric")
			return
		}
		a.deleteByTab(ctx, console.Tab(fields[1]), id)
	case "read":
		if len(fields) != 2 {
			fmt.Println("usage: read <notificationID>")
			return
		}
		if a.admin == nil {
			fmt.Println("not signed in")
			return
		}
		id, err := strconv.Atoi(fields[1])
		if err != nil {
			fmt.Println("notification id must be numeric")
			return
		}
		_ = a.admin.MarkNotificationRead(ctx, id)
	case "logout":
		switch {
		case a.admin != nil:
			a.admin.Logout(ctx)
			a.admin = nil
		case a.staff != nil:
			a.staff.Logout(ctx)
			a.staff = nil
		}
		a.stopRealtime(ctx)
	default:
		fmt.Printf("unknown command %q\n", fields[0])
	}
}

func (a *app) deleteByTab(ctx context.Context, tab console.Tab, id int) {
	switch tab {
	case console.TabProducts:
		_ = a.admin.DeleteProduct(ctx, id)
	case console.TabCategories:
		_ = a.admin.DeleteCategory(ctx, id)
	case console.TabSuppliers:
		_ = a.admin.DeleteSupplier(ctx, id)
	case console.TabUsers:
		_ = a.admin.DeleteUser(ctx, id)
	case console.TabPurchases:
		_ = a.admin.DeletePurchase(ctx, id)
	case console.TabSales:
		_ = a.admin.DeleteSale(ctx, id)
	case console.TabNotifications:
		_ = a.admin.DeleteNotification(ctx, id)
	default:
		fmt.Printf("unknown tab %q\n", tab)
	}
}

func (a *app) login(ctx context.Context, username, password string) {
	ctrl, err := console.NewLogin(console.LoginParams{
		Auth:     a.client,
		Renderer: a.renderer,
		Sessions: a.sessions,
		Logger:   a.logg,
	})
	if err != nil {
		a.logg.Error(ctx, "failed to create login controller", err)
		return
	}
	user, err := ctrl.Submit(ctx, username, password)
	if err != nil {
		return
	}
	if err := a.openDashboard(ctx, *user); err != nil {
		a.logg.Error(ctx, "failed to open dashboard", err)
	}
}
