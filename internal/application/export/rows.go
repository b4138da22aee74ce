// Package export flattens collections into ordered row/column tables and
// renders them as CSV or XLSX documents.
package export

import (
	"fmt"
	"strconv"
	"strings"

	"dubhub/internal/domain/catalog"
	"dubhub/internal/domain/dealership"
	"dubhub/internal/domain/resource"
	"dubhub/internal/domain/task"
	"dubhub/internal/domain/ticket"
)

// Table is an ordered row/column matrix ready for rendering. Every row has
// exactly len(Header) cells; absent values are empty strings.
type Table struct {
	Name   string
	Header []string
	Rows   [][]string
}

func formatInt(v int64) string {
	if v == 0 {
		return ""
	}
	return strconv.FormatInt(v, 10)
}

func formatPrice(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// TicketTable flattens tickets. The activity column carries only the most
// recent update, rendered as "<date>: [<author>] <comment>".
func TicketTable(tickets []ticket.Ticket) Table {
	header := []string{
		"ID", "Name", "Type", "Status", "Priority", "Product Area", "Platform",
		"Location", "Submitter", "Client", "Start Date", "Last Updated",
		"PMR #", "PMG #", "CPM #", "FP Ticket Number", "Ticket Thread ID",
		"Summary", "Details", "Activity",
	}

	rows := make([][]string, 0, len(tickets))
	for _, t := range tickets {
		activity := ""
		if latest, ok := t.LatestUpdate(); ok {
			activity = fmt.Sprintf("%s: [%s] %s", latest.Date, latest.Author, latest.Comment)
		}
		rows = append(rows, []string{
			t.ID,
			t.Title,
			t.Type.String(),
			t.Status.String(),
			t.Priority.String(),
			t.ProductArea.String(),
			t.Platform.String(),
			t.Location,
			t.SubmitterName,
			t.Client,
			t.StartDate,
			t.LastUpdatedDate,
			formatInt(t.PMRNumber),
			formatInt(t.PMGNumber),
			formatInt(t.CPMNumber),
			formatInt(t.FPTicketNumber),
			t.TicketThreadID,
			t.Summary,
			t.Details,
			activity,
		})
	}
	return Table{Name: "Tickets", Header: header, Rows: rows}
}

// DealershipTable flattens accounts with one row per dealership. The product
// catalog drives one pivot column per product code: the cell holds the price
// of the dealership's active order line for that product, or stays empty.
// Received dates and order numbers across lines are joined with "; " so the
// one-row-per-dealership shape holds.
func DealershipTable(dealerships []dealership.Dealership) Table {
	products := catalog.Products()

	header := []string{
		"CIF", "Account Name", "Status", "Store #", "Branch #",
		"Enterprise Group", "ERA System ID", "PP Sys ID", "BU ID",
		"CRM Provider", "Address", "Go-Live Date", "Term Date",
		"Equity Provider", "Reynolds Solutions", "Fullpath Solutions",
		"Websites", "Assigned Specialist", "Sales Person",
		"POC Name", "POC Email", "POC Phone",
		"Order Received Dates", "Order Numbers",
	}
	for _, p := range products {
		header = append(header, p.Code+"-"+p.Name)
	}
	header = append(header, "Total Selling Price")

	rows := make([][]string, 0, len(dealerships))
	for _, d := range dealerships {
		active := d.ActiveOrders()

		var receivedDates, orderNumbers []string
		priceByProduct := make(map[string]string, len(active))
		for _, o := range active {
			if o.ReceivedDate != "" {
				receivedDates = append(receivedDates, o.ReceivedDate)
			}
			if o.OrderNumber != 0 {
				orderNumbers = append(orderNumbers, strconv.FormatInt(o.OrderNumber, 10))
			}
			priceByProduct[o.ProductID] = formatPrice(o.Price)
		}

		var websites []string
		for _, w := range d.WebsiteLinks {
			if w.URL != "" {
				websites = append(websites, w.URL)
			}
		}

		reynolds := make([]string, 0, len(d.ReynoldsSolutions))
		for _, sol := range d.ReynoldsSolutions {
			reynolds = append(reynolds, sol.String())
		}
		fullpath := make([]string, 0, len(d.FullpathSolutions))
		for _, sol := range d.FullpathSolutions {
			fullpath = append(fullpath, sol.String())
		}

		row := []string{
			formatInt(d.AccountNumber),
			d.AccountName,
			d.Status.String(),
			d.StoreNumber,
			d.BranchNumber,
			d.EnterpriseGroup,
			formatInt(d.ERASystemID),
			formatInt(d.PPSysID),
			formatInt(d.BUID),
			d.CRMProvider.String(),
			d.Address,
			d.GoLiveDate,
			d.TermDate,
			d.EquityProvider,
			strings.Join(reynolds, "; "),
			strings.Join(fullpath, "; "),
			strings.Join(websites, "; "),
			d.AssignedSpecialist,
			d.SalesPerson,
			d.POCName,
			d.POCEmail,
			d.POCPhone,
			strings.Join(receivedDates, "; "),
			strings.Join(orderNumbers, "; "),
		}
		for _, p := range products {
			row = append(row, priceByProduct[p.ID])
		}
		row = append(row, formatPrice(d.TotalSellingPrice()))
		rows = append(rows, row)
	}
	return Table{Name: "Dealerships", Header: header, Rows: rows}
}

// ResourceTable flattens resources; topics render as a comma-joined cell.
func ResourceTable(resources []resource.Resource) Table {
	header := []string{
		"ID", "Title", "Date", "Version", "Category", "Scope", "Topics",
		"Description", "Link", "Navigation Path", "Last Updated",
	}

	rows := make([][]string, 0, len(resources))
	for _, r := range resources {
		rows = append(rows, []string{
			r.ID,
			r.Title,
			r.Date,
			r.Version,
			r.Category.String(),
			r.Scope.String(),
			r.Topics.String(),
			r.Description,
			r.LinkURL,
			r.NavigationPath,
			r.LastUpdated,
		})
	}
	return Table{Name: "Resources", Header: header, Rows: rows}
}

// TaskTable flattens tasks.
func TaskTable(tasks []task.Task) Table {
	header := []string{
		"ID", "Title", "Status", "Priority", "Due Date", "Assignee",
		"Description", "Created", "Last Updated",
	}

	rows := make([][]string, 0, len(tasks))
	for _, t := range tasks {
		rows = append(rows, []string{
			t.ID,
			t.Title,
			t.Status.String(),
			t.Priority.String(),
			t.DueDate,
			t.Assignee,
			t.Description,
			t.CreatedDate,
			t.LastUpdatedDate,
		})
	}
	return Table{Name: "Tasks", Header: header, Rows: rows}
}
