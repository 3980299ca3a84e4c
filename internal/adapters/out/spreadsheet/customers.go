package spreadsheet

import (
	"fmt"
	"io"
	"strings"

	"snackshop/internal/core/application/usecases/commands"
	"snackshop/internal/pkg/errs"

	"github.com/xuri/excelize/v2"
)

// headerAliases maps accepted header texts to a column key.
var headerAliases = map[string]string{
	"이름": "name", "고객명": "name", "name": "name",
	"전화번호": "phone", "연락처": "phone", "phone": "phone",
	"우편번호": "zip", "zip": "zip", "postalcode": "zip",
	"주소": "address1", "address": "address1", "address1": "address1",
	"상세주소": "address2", "address2": "address2",
	"메모": "notes", "비고": "notes", "notes": "notes",
}

// ReadCustomers parses the first sheet of an import file. The first row is
// the header; name and phone columns are required, the rest optional. Blank
// rows are dropped and row validation is left to the import command.
func ReadCustomers(r io.Reader) ([]commands.CustomerInput, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("spreadsheet", err)
	}
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("spreadsheet", err)
	}
	if len(rows) == 0 {
		return nil, errs.NewValueIsRequiredError("header row")
	}

	columns := make(map[string]int)
	for i, h := range rows[0] {
		key := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(h), " ", ""))
		if col, ok := headerAliases[key]; ok {
			if _, dup := columns[col]; !dup {
				columns[col] = i
			}
		}
	}
	for _, required := range []string{"name", "phone"} {
		if _, ok := columns[required]; !ok {
			return nil, errs.NewValueIsRequiredError(fmt.Sprintf("%s column", required))
		}
	}

	cell := func(row []string, key string) string {
		i, ok := columns[key]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	inputs := make([]commands.CustomerInput, 0, len(rows)-1)
	for _, row := range rows[1:] {
		in := commands.CustomerInput{
			Name:       cell(row, "name"),
			Phone:      cell(row, "phone"),
			PostalCode: cell(row, "zip"),
			Address1:   cell(row, "address1"),
			Address2:   cell(row, "address2"),
			Notes:      cell(row, "notes"),
		}
		if in == (commands.CustomerInput{}) {
			continue
		}
		inputs = append(inputs, in)
	}
	return inputs, nil
}
