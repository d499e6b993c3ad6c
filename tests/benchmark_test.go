package tests

import (
	"context"
	"fmt"
	"strconv"
	"testing"

	"github.com/nfisher2/SoloDB"
	"github.com/nfisher2/SoloDB/core"
)

// setupBenchmarkDB creates an in-memory instance with test data for benchmarks
func setupBenchmarkDB(b *testing.B) *SoloDB.Instance {
	instance, err := SoloDB.OpenMemory(nil)
	if err != nil {
		b.Fatalf("Failed to open database: %v", err)
	}
	b.Cleanup(func() { instance.Close() })

	ctx := context.Background()
	if err := instance.Store.ExecScript(ctx, `
		CREATE TABLE users (id INTEGER PRIMARY KEY, name TEXT, age INTEGER, city TEXT)
	`); err != nil {
		b.Fatalf("Failed to create table: %v", err)
	}

	// Insert 1000 records
	for i := 1; i <= 1000; i++ {
		_, err := instance.Store.Execute(ctx,
			"INSERT INTO users (id, name, age, city) VALUES (?, ?, ?, ?)",
			i, "User"+strconv.Itoa(i), 20+i%50, "City"+strconv.Itoa(i%10))
		if err != nil {
			b.Fatalf("Insert error: %v", err)
		}
	}

	return instance
}

// BenchmarkGetRows benchmarks full-table reads into row maps
func BenchmarkGetRows(b *testing.B) {
	instance := setupBenchmarkDB(b)
	ctx := context.Background()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, err := instance.Store.GetRows(ctx, "SELECT * FROM users")
		if err != nil {
			b.Fatalf("GetRows error: %v", err)
		}
	}
}

// BenchmarkGetRowsWithWhere benchmarks filtered reads
func BenchmarkGetRowsWithWhere(b *testing.B) {
	instance := setupBenchmarkDB(b)
	ctx := context.Background()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, err := instance.Store.GetRows(ctx, "SELECT * FROM users WHERE age > ?", 40)
		if err != nil {
			b.Fatalf("GetRows error: %v", err)
		}
	}
}

// BenchmarkGetRow benchmarks single-row lookups
func BenchmarkGetRow(b *testing.B) {
	instance := setupBenchmarkDB(b)
	ctx := context.Background()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		id := (i % 1000) + 1
		_, err := instance.Store.GetRow(ctx, "SELECT * FROM users WHERE id = ?", id)
		if err != nil {
			b.Fatalf("GetRow error: %v", err)
		}
	}
}

// BenchmarkGetValue benchmarks scalar reads
func BenchmarkGetValue(b *testing.B) {
	instance := setupBenchmarkDB(b)
	ctx := context.Background()

	queries := []struct {
		name  string
		query string
	}{
		{"Count", "SELECT COUNT(*) FROM users"},
		{"Max", "SELECT MAX(age) FROM users"},
		{"Min", "SELECT MIN(age) FROM users"},
		{"Avg", "SELECT AVG(age) FROM users"},
	}

	for _, q := range queries {
		b.Run(q.name, func(b *testing.B) {
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_, err := instance.Store.GetValue(ctx, q.query)
				if err != nil {
					b.Fatalf("GetValue error: %v", err)
				}
			}
		})
	}
}

// BenchmarkGetColumn benchmarks first-column reads
func BenchmarkGetColumn(b *testing.B) {
	instance := setupBenchmarkDB(b)
	ctx := context.Background()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, err := instance.Store.GetColumn(ctx, "SELECT DISTINCT city FROM users")
		if err != nil {
			b.Fatalf("GetColumn error: %v", err)
		}
	}
}

// BenchmarkGetMap benchmarks key/value pair reads
func BenchmarkGetMap(b *testing.B) {
	instance := setupBenchmarkDB(b)
	ctx := context.Background()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, err := instance.Store.GetMap(ctx, "SELECT name, age FROM users")
		if err != nil {
			b.Fatalf("GetMap error: %v", err)
		}
	}
}

// BenchmarkExecuteInsert benchmarks raw INSERT statements
func BenchmarkExecuteInsert(b *testing.B) {
	instance, err := SoloDB.OpenMemory(nil)
	if err != nil {
		b.Fatalf("Failed to open database: %v", err)
	}
	b.Cleanup(func() { instance.Close() })

	ctx := context.Background()
	if _, err := instance.Store.Execute(ctx,
		"CREATE TABLE items (id INTEGER PRIMARY KEY, value TEXT)"); err != nil {
		b.Fatalf("Create error: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, err := instance.Store.Execute(ctx,
			"INSERT INTO items (value) VALUES (?)", "value"+strconv.Itoa(i))
		if err != nil {
			b.Fatalf("Insert error: %v", err)
		}
	}
}

// BenchmarkInsertRecord benchmarks the record-based insert path
func BenchmarkInsertRecord(b *testing.B) {
	instance, err := SoloDB.OpenMemory(nil)
	if err != nil {
		b.Fatalf("Failed to open database: %v", err)
	}
	b.Cleanup(func() { instance.Close() })

	ctx := context.Background()
	if _, err := instance.Store.Execute(ctx,
		"CREATE TABLE items (id INTEGER PRIMARY KEY, name TEXT, value INTEGER)"); err != nil {
		b.Fatalf("Create error: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, err := instance.Store.Insert(ctx, "items", core.Record{
			"name":  fmt.Sprintf("Name%d", i),
			"value": i * 10,
		})
		if err != nil {
			b.Fatalf("Insert error: %v", err)
		}
	}
}

// BenchmarkReplaceRecord benchmarks repeated replacement of the same key
func BenchmarkReplaceRecord(b *testing.B) {
	instance, err := SoloDB.OpenMemory(nil)
	if err != nil {
		b.Fatalf("Failed to open database: %v", err)
	}
	b.Cleanup(func() { instance.Close() })

	ctx := context.Background()
	if _, err := instance.Store.Execute(ctx,
		"CREATE TABLE settings (key TEXT PRIMARY KEY, value TEXT)"); err != nil {
		b.Fatalf("Create error: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, err := instance.Store.Replace(ctx, "settings", core.Record{
			"key":   "theme",
			"value": "value" + strconv.Itoa(i),
		})
		if err != nil {
			b.Fatalf("Replace error: %v", err)
		}
	}
}

// BenchmarkUpdate benchmarks UPDATE performance
func BenchmarkUpdate(b *testing.B) {
	instance := setupBenchmarkDB(b)
	ctx := context.Background()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		id := (i % 1000) + 1
		_, err := instance.Store.Execute(ctx, "UPDATE users SET age = 99 WHERE id = ?", id)
		if err != nil {
			b.Fatalf("Update error: %v", err)
		}
	}
}

// BenchmarkTransactionCommit benchmarks the cost of a full transaction cycle
func BenchmarkTransactionCommit(b *testing.B) {
	instance := setupBenchmarkDB(b)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		err := instance.Coordinator.RunInTransaction(context.Background(), func(ctx context.Context) error {
			_, err := instance.Store.Execute(ctx, "UPDATE users SET age = age + 1 WHERE id = 1")
			return err
		})
		if err != nil {
			b.Fatalf("Transaction error: %v", err)
		}
	}
}

// BenchmarkTransactionReentrant benchmarks nested transactional calls,
// which should add almost nothing on top of the outer transaction.
func BenchmarkTransactionReentrant(b *testing.B) {
	instance := setupBenchmarkDB(b)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		err := instance.Coordinator.RunInTransaction(context.Background(), func(ctx context.Context) error {
			return instance.Coordinator.RunInTransaction(ctx, func(ctx context.Context) error {
				_, err := instance.Store.Execute(ctx, "UPDATE users SET age = age + 1 WHERE id = 1")
				return err
			})
		})
		if err != nil {
			b.Fatalf("Transaction error: %v", err)
		}
	}
}

// BenchmarkTransactionContention benchmarks transactions competing for the slot
func BenchmarkTransactionContention(b *testing.B) {
	instance := setupBenchmarkDB(b)
	b.ResetTimer()

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			err := instance.Coordinator.RunInTransaction(context.Background(), func(ctx context.Context) error {
				_, err := instance.Store.Execute(ctx, "UPDATE users SET age = age + 1 WHERE id = 2")
				return err
			})
			if err != nil {
				b.Fatalf("Transaction error: %v", err)
			}
		}
	})
}

// BenchmarkQueryDisplay benchmarks the ordered query path used by the shell
func BenchmarkQueryDisplay(b *testing.B) {
	instance := setupBenchmarkDB(b)
	ctx := context.Background()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, err := instance.Store.Query(ctx, "SELECT id, name, age, city FROM users LIMIT 50")
		if err != nil {
			b.Fatalf("Query error: %v", err)
		}
	}
}
