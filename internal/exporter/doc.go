// Package exporter writes the offer-response feature table.
//
// Store is the primary output: a SQLite table, replaced wholesale in a
// single transaction on every run. CSVWriter and XLSXWriter produce optional
// side exports of the same columns. All writers share the column layout
// returned by Columns.
//
// Example usage:
//
//	store, err := exporter.OpenStore("features.db", cfg.Store, logger)
//	if err != nil {
//	    return err
//	}
//	defer store.Close()
//	err = store.Replace(ctx, table)
package exporter
