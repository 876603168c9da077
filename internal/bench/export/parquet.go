// Package export writes benchmark trials as parquet rows for offline
// analysis.
package export

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/DjordjeVuckovic/fieldbench/internal/bench/runner"
	"github.com/xitongsys/parquet-go-source/local"
	"github.com/xitongsys/parquet-go/parquet"
	"github.com/xitongsys/parquet-go/reader"
	"github.com/xitongsys/parquet-go/writer"
)

const parallelism = 4

type TrialRow struct {
	RunID     string  `parquet:"name=run_id, type=BYTE_ARRAY, convertedtype=UTF8, encoding=PLAIN_DICTIONARY"`
	Run       int32   `parquet:"name=run, type=INT32"`
	Scenario  string  `parquet:"name=scenario, type=BYTE_ARRAY, convertedtype=UTF8, encoding=PLAIN_DICTIONARY"`
	Threads   int32   `parquet:"name=threads, type=INT32"`
	ElapsedMs float64 `parquet:"name=elapsed_ms, type=DOUBLE"`
	Ops       int64   `parquet:"name=ops, type=INT64"`
	Snapshot  string  `parquet:"name=snapshot, type=BYTE_ARRAY, convertedtype=UTF8"`
	OpP50Ns   int64   `parquet:"name=op_p50_ns, type=INT64"`
	OpP99Ns   int64   `parquet:"name=op_p99_ns, type=INT64"`
}

func rowsOf(br *runner.BenchmarkResult) []TrialRow {
	rows := make([]TrialRow, 0, len(br.Trials))
	for _, tr := range br.Trials {
		row := TrialRow{
			RunID:     br.RunID.String(),
			Run:       int32(tr.Run),
			Scenario:  tr.Scenario,
			Threads:   int32(tr.Threads),
			ElapsedMs: tr.ElapsedMillis(),
			Ops:       int64(tr.Ops),
			Snapshot:  tr.Snapshot,
		}
		if tr.OpLatency != nil {
			row.OpP50Ns = int64(tr.OpLatency.P50)
			row.OpP99Ns = int64(tr.OpLatency.P99)
		}
		rows = append(rows, row)
	}
	return rows
}

// WriteParquet writes one row per trial of br to path.
func WriteParquet(path string, br *runner.BenchmarkResult) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create parquet dir: %w", err)
	}

	file, err := local.NewLocalFileWriter(path)
	if err != nil {
		return fmt.Errorf("create parquet file: %w", err)
	}

	pw, err := writer.NewParquetWriter(file, new(TrialRow), parallelism)
	if err != nil {
		file.Close()
		return fmt.Errorf("create parquet writer: %w", err)
	}
	pw.CompressionType = parquet.CompressionCodec_SNAPPY

	for _, row := range rowsOf(br) {
		if err := pw.Write(row); err != nil {
			file.Close()
			return fmt.Errorf("write trial row: %w", err)
		}
	}

	if err := pw.WriteStop(); err != nil {
		file.Close()
		return fmt.Errorf("stop parquet writer: %w", err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("close parquet file: %w", err)
	}
	return nil
}

// ReadParquet loads every row of a file written by WriteParquet.
func ReadParquet(path string) ([]TrialRow, error) {
	file, err := local.NewLocalFileReader(path)
	if err != nil {
		return nil, fmt.Errorf("open parquet file: %w", err)
	}
	defer file.Close()

	pr, err := reader.NewParquetReader(file, new(TrialRow), parallelism)
	if err != nil {
		return nil, fmt.Errorf("create parquet reader: %w", err)
	}
	defer pr.ReadStop()

	rows := make([]TrialRow, int(pr.GetNumRows()))
	if len(rows) == 0 {
		return rows, nil
	}
	if err := pr.Read(&rows); err != nil {
		return nil, fmt.Errorf("read trial rows: %w", err)
	}
	return rows, nil
}
