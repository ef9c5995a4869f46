package usecase_test

import (
	"context"
	"errors"
	"testing"

	"customs-reconciliation/internal/domain"
	"customs-reconciliation/internal/usecase"
	mock_usecase "customs-reconciliation/internal/usecase/mocks"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	ledgerPath = "/examples/ledger/vama_martie.pdf"
	sheetPath  = "/examples/export/martie.xlsx"
	outputPath = "/examples/export/vama-martie.xlsx"
)

const ledgerText = `VAMA CHISINAU extras de cont
Calculat A123 15.03.2024 MDL taxa 1000.00
Pl.Virament 9001 15.03.2024 MDL ordin plata 295.00
Calculat B777 20.03.2024 MDL taxa 40.00
Calculat OLD1 28.02.2024 MDL taxa 10.00
`

func sheetRow(ordinal, date string, typ domain.RowType, number, debit, credit string) domain.RowCells {
	return domain.RowCells{
		Ordinal:        ordinal,
		Date:           date,
		DocumentType:   string(typ),
		DocumentNumber: number,
		Debit:          debit,
		Credit:         credit,
	}
}

func exportRows() domain.SheetRows {
	cells := []domain.RowCells{
		{Ordinal: "No.", Date: "Date", DocumentType: "Document", DocumentNumber: "Number", Debit: "Debit", Credit: "Credit"},
		sheetRow("1", "15.03.2024", domain.RowCustomsDeclaration, "A0123", "", "1000"),
		sheetRow("2", "15.03.2024", domain.RowBankOperationExpense, "BO-1", "300", ""),
		sheetRow("3", "18.03.2024", domain.RowBankOperationExpense, "BO-2", "60", ""),
		sheetRow("4", "19.03.2024", domain.RowDebtCorrection, "", "70", ""),
	}
	return domain.SheetRows{Display: cells, Raw: cells}
}

func TestReconciliationUseCase_Reconcile(t *testing.T) {
	tests := []struct {
		name        string
		text        string
		rows        domain.SheetRows
		extractErr  error
		readErr     error
		writeErr    error
		expectRead  bool
		expectWrite bool
		wantErr     error
		want        *domain.Summary
	}{
		{
			name:        "successful reconciliation",
			text:        ledgerText,
			rows:        exportRows(),
			expectRead:  true,
			expectWrite: true,
			want: &domain.Summary{
				ReportingMonth:     3,
				TotalRowsProcessed: 5,
				ValidRows:          3,
				InvalidRows:        2,
				LedgerEntries:      4,
				ExactMatches:       1,
				ToleranceMatches:   1,
				UnmatchedRows:      1,
				DiscrepantMatches:  1,
				ResidualKept:       1,
				ResidualDropped:    1,
			},
		},
		{
			name:       "empty ledger text",
			text:       "",
			rows:       exportRows(),
			expectRead: true,
			wantErr:    domain.ErrMissingInput,
		},
		{
			name:       "blank ledger text",
			text:       " \n\t ",
			rows:       exportRows(),
			expectRead: true,
			wantErr:    domain.ErrMissingInput,
		},
		{
			name:       "no spreadsheet rows",
			text:       ledgerText,
			rows:       domain.SheetRows{},
			expectRead: true,
			wantErr:    domain.ErrMissingInput,
		},
		{
			name:       "raw rows missing",
			text:       ledgerText,
			rows:       domain.SheetRows{Display: exportRows().Display},
			expectRead: true,
			wantErr:    domain.ErrMissingInput,
		},
		{
			name:       "extractor error",
			extractErr: errors.New("broken pdf"),
		},
		{
			name:       "reader error",
			text:       ledgerText,
			readErr:    errors.New("broken workbook"),
			expectRead: true,
		},
		{
			name:        "writer error",
			text:        ledgerText,
			rows:        exportRows(),
			writeErr:    errors.New("disk full"),
			expectRead:  true,
			expectWrite: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			extractor := mock_usecase.NewMockTextExtractor(ctrl)
			reader := mock_usecase.NewMockTableReader(ctrl)
			writer := mock_usecase.NewMockTableWriter(ctrl)

			// Setup mock expectations
			extractor.EXPECT().
				ExtractText(gomock.Any(), ledgerPath).
				Return(tt.text, tt.extractErr)
			if tt.expectRead {
				reader.EXPECT().
					ReadRows(gomock.Any(), sheetPath).
					Return(tt.rows, tt.readErr)
			}
			var written domain.Sheet
			if tt.expectWrite {
				writer.EXPECT().
					WriteSheet(gomock.Any(), outputPath, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, sheet domain.Sheet) error {
						written = sheet
						return tt.writeErr
					})
			}

			uc := usecase.NewReconciliationUseCase(extractor, reader, writer, usecase.DefaultOptions())
			got, err := uc.Reconcile(context.Background(), ledgerPath, sheetPath, outputPath)

			if tt.want == nil {
				assert.Error(t, err)
				assert.Nil(t, got)
				if tt.wantErr != nil {
					assert.ErrorIs(t, err, tt.wantErr)
				}
				return
			}

			require.NoError(t, err)
			require.NotNil(t, got)
			assert.Equal(t, "5", got.Summary.TotalDiscrepancyValue.String())
			got.Summary.TotalDiscrepancyValue = tt.want.TotalDiscrepancyValue
			assert.Equal(t, *tt.want, got.Summary)
			assert.Equal(t, outputPath, got.Output)

			assert.Equal(t, []string{"A123", "9001", ""}, matchedNumbers(got.Matches))
			assert.Equal(t, []string{"B777"}, matchedNumbersOf(got.Residual.Kept))
			assert.Equal(t, []string{"OLD1"}, matchedNumbersOf(got.Residual.Dropped))

			// 3 header rows, 3 rows, 3 blank rows, 1 residual entry
			assert.Len(t, written.Rows, 10)
			assert.Equal(t, "Vama", written.Name)
		})
	}
}

func TestReconciliationUseCase_RunUsesFreshState(t *testing.T) {
	uc := usecase.NewReconciliationUseCase(nil, nil, nil, usecase.DefaultOptions())

	first, err := uc.Run(ledgerText, exportRows())
	require.NoError(t, err)
	second, err := uc.Run(ledgerText, exportRows())
	require.NoError(t, err)

	assert.Equal(t, matchedNumbers(first.Matches), matchedNumbers(second.Matches))
	assert.Equal(t, first.Summary.ExactMatches, second.Summary.ExactMatches)
	assert.Equal(t, first.Sheet, second.Sheet)
}

func TestReconciliationUseCase_Ledger(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	extractor := mock_usecase.NewMockTextExtractor(ctrl)

	extractor.EXPECT().ExtractText(gomock.Any(), ledgerPath).Return(ledgerText, nil)
	extractor.EXPECT().ExtractText(gomock.Any(), "empty.pdf").Return("", nil)

	uc := usecase.NewReconciliationUseCase(extractor, nil, nil, usecase.DefaultOptions())

	entries, err := uc.Ledger(context.Background(), ledgerPath)
	require.NoError(t, err)
	assert.Equal(t, []string{"A123", "9001", "B777", "OLD1"}, matchedNumbersOf(entries))

	_, err = uc.Ledger(context.Background(), "empty.pdf")
	assert.ErrorIs(t, err, domain.ErrMissingInput)
}

func TestReportFileName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "martie.xlsx", want: "vama-martie.xlsx"},
		{in: "MARTIE.XLSX", want: "vama-MARTIE.XLSX"},
		{in: "martie.xls", want: "vama-martie.xlsx"},
		{in: "martie.csv", want: "vama-martie.csv.xlsx"},
		{in: "/data/in/martie.xlsx", want: "/data/in/vama-martie.xlsx"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, usecase.ReportFileName(tt.in, "vama-"))
		})
	}
}
