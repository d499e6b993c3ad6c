package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/nfisher2/SoloDB"
	"github.com/nfisher2/SoloDB/db"
	"github.com/nfisher2/SoloDB/logger"
	"github.com/nfisher2/SoloDB/sql"
)

const (
	PromptColor  = "\033[36m" // Cyan
	ErrorColor   = "\033[31m" // Red
	SuccessColor = "\033[32m" // Green
	ResetColor   = "\033[0m"
	BoldColor    = "\033[1m"
)

// Version is set at build time via -ldflags
var Version = "dev"

// CLI holds the CLI state
type CLI struct {
	instance    *SoloDB.Instance
	history     []string
	historyFile string
}

func main() {
	path := flag.String("path", "", "Database file path (empty for in-memory)")
	busyTimeout := flag.Duration("busyTimeout", 5*time.Second, "SQLite busy timeout")
	logLevel := flag.String("logLevel", "warn", "Log level (debug, info, warn, error)")
	logFormat := flag.String("logFormat", "console", "Log format (console or json)")
	sqlFile := flag.String("sqlFile", "", "SQL file to execute (non-interactive)")
	flag.Parse()

	printBanner()

	log, err := logger.New(logger.Config{
		Level:      *logLevel,
		Format:     *logFormat,
		OutputFile: "stderr",
	})
	if err != nil {
		fmt.Printf("%sError: %v%s\n", ErrorColor, err, ResetColor)
		os.Exit(1)
	}

	if *path == "" {
		fmt.Printf("%sUsing in-memory database%s\n", SuccessColor, ResetColor)
	} else {
		fmt.Printf("%sUsing database: %s%s\n", SuccessColor, *path, ResetColor)
	}

	instance, err := SoloDB.Open(db.Config{
		Path:        *path,
		BusyTimeout: *busyTimeout,
		ForeignKeys: true,
	}, log)
	if err != nil {
		fmt.Printf("%sError: %v%s\n", ErrorColor, err, ResetColor)
		os.Exit(1)
	}
	defer instance.Close()

	cli := &CLI{
		instance:    instance,
		history:     make([]string, 0),
		historyFile: getHistoryPath(),
	}

	cli.loadHistory()

	// Execute SQL file if provided
	if *sqlFile != "" {
		if err := cli.importFile(*sqlFile); err != nil {
			fmt.Printf("%sError importing file: %v%s\n", ErrorColor, err, ResetColor)
			os.Exit(1)
		}
		return
	}

	cli.run()
}

func printBanner() {
	fmt.Println()
	fmt.Printf("%s%s╔═══════════════════════════════════════╗%s\n", BoldColor, PromptColor, ResetColor)
	fmt.Printf("%s%s║            SoloDB v%-7s            ║%s\n", BoldColor, PromptColor, Version, ResetColor)
	fmt.Printf("%s%s║  One connection, one transaction      ║%s\n", BoldColor, PromptColor, ResetColor)
	fmt.Printf("%s%s╚═══════════════════════════════════════╝%s\n", BoldColor, PromptColor, ResetColor)
	fmt.Println()
	fmt.Println("Type .help for commands, .quit to exit")
	fmt.Println()
}

func (cli *CLI) run() {
	reader := bufio.NewReader(os.Stdin)
	var multiLineBuffer strings.Builder

	for {
		fmt.Print(cli.getPrompt(multiLineBuffer.Len() > 0))

		input, err := reader.ReadString('\n')
		if err != nil {
			fmt.Printf("\n%sGoodbye!%s\n", SuccessColor, ResetColor)
			return
		}

		input = strings.TrimSuffix(input, "\n")
		input = strings.TrimSuffix(input, "\r")

		if strings.TrimSpace(input) == "" {
			continue
		}

		// Special commands only apply outside multi-line mode
		if multiLineBuffer.Len() == 0 && strings.HasPrefix(input, ".") {
			if cli.handleCommand(input) {
				continue
			}
		}

		// Accumulate until we see a terminating semicolon
		multiLineBuffer.WriteString(input)

		trimmed := strings.TrimSpace(multiLineBuffer.String())
		if !strings.HasSuffix(trimmed, ";") {
			multiLineBuffer.WriteString(" ")
			continue
		}

		statements := sql.SplitStatements(trimmed)
		multiLineBuffer.Reset()

		for _, statement := range statements {
			cli.addToHistory(statement + ";")
			cli.execute(statement)
		}
	}
}

// execute routes one statement: reads go straight to the store, writes
// run inside their own transaction.
func (cli *CLI) execute(statement string) {
	ctx := context.Background()

	if sql.IsQuery(statement) {
		result, err := cli.instance.Store.Query(ctx, statement)
		if err != nil {
			fmt.Printf("%s✗ Error: %v%s\n", ErrorColor, err, ResetColor)
			return
		}
		result.Display(os.Stdout)
		return
	}

	var result db.ExecResult
	err := cli.instance.Coordinator.RunInTransaction(ctx, func(ctx context.Context) error {
		var execErr error
		result, execErr = cli.instance.Store.Execute(ctx, statement)
		return execErr
	})
	if err != nil {
		fmt.Printf("%s✗ Error: %v%s\n", ErrorColor, err, ResetColor)
		return
	}

	fmt.Printf("%s✓ OK%s (%d row(s) affected", SuccessColor, ResetColor, result.RowsAffected)
	if result.LastInsertID > 0 {
		fmt.Printf(", last id %d", result.LastInsertID)
	}
	fmt.Println(")")
}

func (cli *CLI) getPrompt(multiLine bool) string {
	if multiLine {
		return fmt.Sprintf("%s  ...>%s ", PromptColor, ResetColor)
	}
	return fmt.Sprintf("%ssolodb>%s ", PromptColor, ResetColor)
}

func (cli *CLI) handleCommand(input string) bool {
	parts := strings.Fields(strings.TrimSpace(input))

	if len(parts) == 0 {
		return true
	}

	// Only the command word is case-insensitive; arguments such as
	// .import paths keep their case.
	switch strings.ToLower(parts[0]) {
	case ".quit", ".exit", ".q":
		fmt.Printf("%sGoodbye!%s\n", SuccessColor, ResetColor)
		cli.saveHistory()
		os.Exit(0)

	case ".help", ".h", ".?":
		cli.printHelp()

	case ".tables":
		cli.showTables()

	case ".schema":
		cli.showSchema()

	case ".clear", ".cls":
		fmt.Print("\033[H\033[2J")

	case ".history":
		cli.printHistory()

	case ".version":
		fmt.Printf("SoloDB version %s\n", Version)

	case ".import":
		if len(parts) > 1 {
			if err := cli.importFile(parts[1]); err != nil {
				fmt.Printf("%s✗ Error: %v%s\n", ErrorColor, err, ResetColor)
			}
		} else {
			fmt.Printf("%s✗ Usage: .import <file.sql>%s\n", ErrorColor, ResetColor)
		}

	default:
		fmt.Printf("%s✗ Unknown command: %s (type .help for commands)%s\n", ErrorColor, parts[0], ResetColor)
	}

	return true
}

func (cli *CLI) printHelp() {
	fmt.Println()
	fmt.Printf("%s%sSpecial Commands:%s\n", BoldColor, PromptColor, ResetColor)
	fmt.Println("  .help, .h        Show this help message")
	fmt.Println("  .quit, .exit     Exit the CLI")
	fmt.Println("  .tables          List tables")
	fmt.Println("  .schema          Show the full schema")
	fmt.Println("  .import <file>   Execute SQL statements from a file")
	fmt.Println("  .history         Show command history")
	fmt.Println("  .clear           Clear the screen")
	fmt.Println("  .version         Show version info")
	fmt.Println()
	fmt.Printf("%s%sSQL:%s statements end with a semicolon; writes run in their\n", BoldColor, PromptColor, ResetColor)
	fmt.Println("own transaction, reads go straight to the store.")
	fmt.Println()
}

func (cli *CLI) showTables() {
	result, err := cli.instance.Store.Query(context.Background(),
		"SELECT name FROM sqlite_master WHERE type = 'table' ORDER BY name")
	if err != nil {
		fmt.Printf("%s✗ Error: %v%s\n", ErrorColor, err, ResetColor)
		return
	}
	result.Display(os.Stdout)
}

func (cli *CLI) showSchema() {
	result, err := cli.instance.Store.Query(context.Background(),
		"SELECT name, sql FROM sqlite_master WHERE sql IS NOT NULL ORDER BY name")
	if err != nil {
		fmt.Printf("%s✗ Error: %v%s\n", ErrorColor, err, ResetColor)
		return
	}
	result.Display(os.Stdout)
}

// importFile executes the statements of a SQL file as one transaction.
func (cli *CLI) importFile(path string) error {
	script, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	return cli.instance.Coordinator.RunInTransaction(context.Background(), func(ctx context.Context) error {
		return cli.instance.Store.ExecScript(ctx, string(script))
	})
}

func (cli *CLI) addToHistory(cmd string) {
	// Don't add duplicates of the last command
	if len(cli.history) > 0 && cli.history[len(cli.history)-1] == cmd {
		return
	}
	cli.history = append(cli.history, cmd)

	// Limit history size
	if len(cli.history) > 1000 {
		cli.history = cli.history[len(cli.history)-1000:]
	}
}

func (cli *CLI) printHistory() {
	if len(cli.history) == 0 {
		fmt.Println("No command history")
		return
	}

	start := 0
	if len(cli.history) > 20 {
		start = len(cli.history) - 20
	}
	for i := start; i < len(cli.history); i++ {
		fmt.Printf("  %3d  %s\n", i+1, cli.history[i])
	}
}

func getHistoryPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".solodb_history")
}

func (cli *CLI) loadHistory() {
	if cli.historyFile == "" {
		return
	}
	data, err := os.ReadFile(cli.historyFile)
	if err != nil {
		return
	}
	for _, line := range strings.Split(string(data), "\n") {
		if strings.TrimSpace(line) != "" {
			cli.history = append(cli.history, line)
		}
	}
}

func (cli *CLI) saveHistory() {
	if cli.historyFile == "" {
		return
	}
	_ = os.WriteFile(cli.historyFile, []byte(strings.Join(cli.history, "\n")), 0600)
}
