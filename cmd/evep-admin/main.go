package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/evep-admin/internal/api"
	"github.com/noah-isme/evep-admin/internal/filter"
	"github.com/noah-isme/evep-admin/internal/form"
	"github.com/noah-isme/evep-admin/internal/models"
	"github.com/noah-isme/evep-admin/internal/notify"
	"github.com/noah-isme/evep-admin/internal/report"
	"github.com/noah-isme/evep-admin/internal/store"
	"github.com/noah-isme/evep-admin/internal/view"
	"github.com/noah-isme/evep-admin/pkg/auth"
	"github.com/noah-isme/evep-admin/pkg/config"
	apperrors "github.com/noah-isme/evep-admin/pkg/errors"
	"github.com/noah-isme/evep-admin/pkg/logger"
	"github.com/noah-isme/evep-admin/pkg/storage"
)

type app struct {
	cfg      *config.Config
	logr     *zap.Logger
	client   *api.Client
	notifier *notify.Notifier
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	a := &app{
		cfg:      cfg,
		logr:     logr,
		client:   api.NewClient(cfg.API, logr),
		notifier: notify.NewNotifier(cfg.Notify.AutoDismiss, logr),
	}

	ctx := context.Background()
	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "list":
		err = a.runList(ctx, args)
	case "show":
		err = a.runShow(ctx, args)
	case "create":
		err = a.runCreate(ctx, args)
	case "update":
		err = a.runUpdate(ctx, args)
	case "delete":
		err = a.runDelete(ctx, args)
	case "export-report":
		err = a.runExportReport(args)
	case "prune-exports":
		err = a.runPruneExports()
	case "whoami":
		err = a.runWhoami()
	default:
		usage()
		os.Exit(2)
	}

	if note := a.notifier.Current(); note.Open {
		fmt.Fprintf(os.Stderr, "[%s] %s\n", note.Severity, note.Message)
	}
	if err != nil {
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: evep-admin <command> [flags]")
	fmt.Fprintln(os.Stderr, "commands: list, show, create, update, delete, export-report, prune-exports, whoami")
}

func (a *app) store(confirm store.ConfirmFunc) *store.DataStore {
	return store.NewDataStore(a.client, a.notifier, confirm, a.logr)
}

func (a *app) runList(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("list", flag.ExitOnError)
	search := fs.String("search", "", "case-insensitive substring across name, national id, phone, email")
	school := fs.String("school", models.FilterAll, "exact school name, or 'all'")
	gender := fs.String("gender", models.FilterAll, "M, F, or 'all'")
	if err := fs.Parse(args); err != nil {
		return err
	}

	ds := a.store(nil)
	if err := ds.Load(ctx); err != nil {
		return err
	}

	criteria := models.FilterCriteria{Search: *search, School: *school, Gender: *gender}
	visible := filter.Visible(ds.Records(), criteria)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tSCHOOL\tGENDER\tPHONE\tEMAIL")
	for _, r := range visible {
		fmt.Fprintf(w, "%s\t%s %s %s\t%s\t%s\t%s\t%s\n",
			r.ID, r.Title, r.FirstName, r.LastName, r.School, r.Gender, r.Phone, r.Email)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Printf("%d of %d record(s)\n", len(visible), len(ds.Records()))
	return nil
}

func (a *app) runShow(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("show requires a record id")
	}
	id := args[0]

	ds := a.store(nil)
	if err := ds.Load(ctx); err != nil {
		return err
	}
	record, ok := findRecord(ds.Records(), id)
	if !ok {
		return fmt.Errorf("no record with id %s", id)
	}

	vc := view.NewController()
	vc.OpenView(record)
	defer vc.Close()

	shown, _ := vc.Viewed()
	printRecord(shown)
	return nil
}

func (a *app) runCreate(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("create", flag.ExitOnError)
	registerFieldFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	ds := a.store(nil)
	fc := form.NewController(ds)
	vc := view.NewController()

	fc.OpenForCreate()
	vc.OpenEditor()
	if err := applyFieldFlags(fs, fc); err != nil {
		return err
	}
	return fc.Submit(ctx, vc.Close)
}

func (a *app) runUpdate(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("update requires a record id")
	}
	id := args[0]
	fs := flag.NewFlagSet("update", flag.ExitOnError)
	registerFieldFlags(fs)
	if err := fs.Parse(args[1:]); err != nil {
		return err
	}

	ds := a.store(nil)
	if err := ds.Load(ctx); err != nil {
		return err
	}
	record, ok := findRecord(ds.Records(), id)
	if !ok {
		return fmt.Errorf("no record with id %s", id)
	}

	fc := form.NewController(ds)
	vc := view.NewController()

	fc.OpenForEdit(record)
	vc.OpenEditor()
	if err := applyFieldFlags(fs, fc); err != nil {
		return err
	}
	return fc.Submit(ctx, vc.Close)
}

func (a *app) runDelete(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("delete", flag.ExitOnError)
	yes := fs.Bool("yes", false, "skip the interactive confirmation")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		return fmt.Errorf("delete requires a record id")
	}

	confirm := promptConfirm
	if *yes {
		confirm = func(string) bool { return true }
	}
	ds := a.store(confirm)
	return ds.Delete(ctx, fs.Arg(0))
}

func (a *app) runExportReport(args []string) error {
	fs := flag.NewFlagSet("export-report", flag.ExitOnError)
	reportType := fs.String("type", models.ReportTypeSummary, "report type")
	school := fs.String("school", "", "school name (required)")
	format := fs.String("format", "csv", "output format: csv, pdf, xlsx")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *school == "" {
		return fmt.Errorf("export-report requires -school")
	}

	local, err := storage.NewLocalStorage(a.cfg.Exports.Dir)
	if err != nil {
		return err
	}
	exporter := report.NewExporter(local, a.logr)

	summary := models.SampleReportSummary(*reportType, *school, time.Now())
	path, err := exporter.Export(summary, *format)
	if err != nil {
		a.notifier.Failure(apperrors.FromError(err).Message)
		return err
	}
	a.notifier.Success("report exported to " + path)
	return nil
}

func (a *app) runPruneExports() error {
	local, err := storage.NewLocalStorage(a.cfg.Exports.Dir)
	if err != nil {
		return err
	}
	deleted, err := local.CleanupOlderThan(a.cfg.Exports.PruneAfter)
	if err != nil {
		return err
	}
	fmt.Printf("pruned %d export file(s)\n", len(deleted))
	return nil
}

func (a *app) runWhoami() error {
	info, err := auth.Inspect(a.cfg.API.Token)
	if err != nil {
		return err
	}
	fmt.Printf("subject: %s\n", info.Subject)
	if info.Issuer != "" {
		fmt.Printf("issuer: %s\n", info.Issuer)
	}
	if info.ExpiresAt != nil {
		fmt.Printf("expires: %s (expired: %t)\n", info.ExpiresAt.Format(time.RFC3339), info.Expired)
	}
	return nil
}

// addressFields are the flag names routed to the nested address block.
var addressFields = map[string]bool{
	"house_no": true, "moo": true, "soi": true, "road": true,
	"subdistrict": true, "district": true, "province": true, "postal_code": true,
}

var scalarFields = []string{
	"title", "first_name", "last_name", "national_id", "birth_date",
	"gender", "phone", "email", "school", "position", "school_year",
}

func registerFieldFlags(fs *flag.FlagSet) {
	for _, name := range scalarFields {
		fs.String(name, "", "teacher field "+name)
	}
	for name := range addressFields {
		fs.String(name, "", "work address field "+name)
	}
}

// applyFieldFlags forwards only the flags the user actually set, so an
// update without a flag keeps the loaded value.
func applyFieldFlags(fs *flag.FlagSet, fc *form.Controller) error {
	var applyErr error
	fs.Visit(func(f *flag.Flag) {
		if applyErr != nil {
			return
		}
		if addressFields[f.Name] {
			applyErr = fc.SetAddressField(f.Name, f.Value.String())
			return
		}
		applyErr = fc.SetField(f.Name, f.Value.String())
	})
	return applyErr
}

func findRecord(records []models.TeacherRecord, id string) (models.TeacherRecord, bool) {
	for _, r := range records {
		if r.ID == id {
			return r, true
		}
	}
	return models.TeacherRecord{}, false
}

func printRecord(r models.TeacherRecord) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "ID\t%s\n", r.ID)
	fmt.Fprintf(w, "Name\t%s %s %s\n", r.Title, r.FirstName, r.LastName)
	fmt.Fprintf(w, "National ID\t%s\n", r.NationalID)
	fmt.Fprintf(w, "Birth Date\t%s\n", r.BirthDate)
	fmt.Fprintf(w, "Gender\t%s\n", r.Gender)
	fmt.Fprintf(w, "Phone\t%s\n", r.Phone)
	fmt.Fprintf(w, "Email\t%s\n", r.Email)
	fmt.Fprintf(w, "School\t%s\n", r.School)
	fmt.Fprintf(w, "Position\t%s\n", r.Position)
	fmt.Fprintf(w, "School Year\t%s\n", r.SchoolYear)
	if r.Address != nil {
		addr := r.Address
		fmt.Fprintf(w, "Address\t%s moo %s soi %s %s, %s, %s, %s %s\n",
			addr.HouseNo, addr.Moo, addr.Soi, addr.Road,
			addr.Subdistrict, addr.District, addr.Province, addr.PostalCode)
	}
	fmt.Fprintf(w, "Created\t%s\n", r.CreatedAt)
	fmt.Fprintf(w, "Updated\t%s\n", r.UpdatedAt)
	w.Flush() //nolint:errcheck
}

// promptConfirm is the interactive confirmation step before a delete.
func promptConfirm(prompt string) bool {
	fmt.Fprintf(os.Stderr, "%s [y/N]: ", prompt)
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}
