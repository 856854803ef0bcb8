// Package cli is the interactive shell: a line-based menu loop that
// maps each command 1:1 onto an application-service operation. All
// parsing and prompting lives here, never in the core.
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"

	"utility-billing/internal/analytics"
	"utility-billing/internal/billing/application"
	billing "utility-billing/internal/billing/domain"
	billinterfaces "utility-billing/internal/billing/interfaces"
	directory "utility-billing/internal/directory/domain"
	reportinterfaces "utility-billing/internal/reporting/interfaces"
)

// Shell runs the operator menu loop.
type Shell struct {
	svc       *application.Service
	in        *bufio.Reader
	out       io.Writer
	reportDir string
	logger    *log.Logger
}

// NewShell constructs a shell.
func NewShell(svc *application.Service, in io.Reader, out io.Writer, reportDir string, logger *log.Logger) (*Shell, error) {
	if svc == nil {
		return nil, errors.New("shell: nil service")
	}
	if in == nil || out == nil {
		return nil, errors.New("shell: nil streams")
	}
	if logger == nil {
		return nil, errors.New("shell: nil logger")
	}
	if reportDir == "" {
		reportDir = "."
	}
	return &Shell{svc: svc, in: bufio.NewReader(in), out: out, reportDir: reportDir, logger: logger}, nil
}

// Run loops over the menu until the operator exits or input ends.
func (s *Shell) Run() error {
	for {
		s.printMenu()
		choice, err := s.promptInt("Enter your choice: ")
		if err != nil {
			if errors.Is(err, io.EOF) {
				return s.exit()
			}
			fmt.Fprintln(s.out, "Invalid choice! Please try again.")
			continue
		}

		switch choice {
		case 1:
			err = s.addCustomer()
		case 2:
			err = s.viewCustomer()
		case 3:
			err = s.generateBill()
		case 4:
			err = s.viewLatestBill()
		case 5:
			err = s.recordPayment()
		case 6:
			err = s.paymentHistory()
		case 7:
			err = s.compare()
		case 8:
			err = s.project()
		case 9:
			err = s.alert()
		case 10:
			err = s.updateCustomer()
		case 11:
			s.listCustomers()
		case 12:
			err = s.searchCustomer()
		case 13:
			err = s.report()
		case 0:
			return s.exit()
		default:
			fmt.Fprintln(s.out, "Invalid choice! Please try again.")
		}

		if err != nil {
			if errors.Is(err, io.EOF) {
				return s.exit()
			}
			s.reportError(err)
		}
	}
}

func (s *Shell) exit() error {
	if err := s.svc.Save(); err != nil {
		return err
	}
	fmt.Fprintln(s.out, "Thank you for using Electric Billing System. Goodbye!")
	return nil
}

func (s *Shell) printMenu() {
	fmt.Fprintln(s.out, "\n========== ELECTRIC BILLING SYSTEM ==========")
	fmt.Fprintln(s.out, "1. Add New Customer")
	fmt.Fprintln(s.out, "2. View Customer Details")
	fmt.Fprintln(s.out, "3. Generate New Bill")
	fmt.Fprintln(s.out, "4. View Latest Bill")
	fmt.Fprintln(s.out, "5. Record Payment")
	fmt.Fprintln(s.out, "6. View Payment History")
	fmt.Fprintln(s.out, "7. Compare With Previous Bill")
	fmt.Fprintln(s.out, "8. Project Next Month's Bill")
	fmt.Fprintln(s.out, "9. Generate Energy Usage Alert")
	fmt.Fprintln(s.out, "10. Update Customer Information")
	fmt.Fprintln(s.out, "11. Show All Customers")
	fmt.Fprintln(s.out, "12. Search Customer")
	fmt.Fprintln(s.out, "13. Generate Monthly Report")
	fmt.Fprintln(s.out, "0. Exit")
	fmt.Fprintln(s.out, "============================================")
}

func (s *Shell) reportError(err error) {
	switch {
	case errors.Is(err, directory.ErrCustomerNotFound):
		fmt.Fprintln(s.out, "Customer not found!")
	case errors.Is(err, directory.ErrDirectoryFull):
		fmt.Fprintln(s.out, "Maximum number of customers reached!")
	case errors.Is(err, directory.ErrDuplicateMeter):
		fmt.Fprintln(s.out, "A customer with this meter number already exists!")
	case errors.Is(err, billing.ErrAlreadyPaid):
		fmt.Fprintln(s.out, "This bill is already paid!")
	case errors.Is(err, billing.ErrBillNotFound):
		fmt.Fprintln(s.out, "Invalid bill index!")
	case errors.Is(err, billing.ErrNoBills):
		fmt.Fprintln(s.out, "No bills found for this customer!")
	case errors.Is(err, billing.ErrMeterReadingRegressed):
		fmt.Fprintln(s.out, "Meter reading cannot be below the previous reading!")
	case errors.Is(err, analytics.ErrInsufficientData):
		fmt.Fprintln(s.out, "Not enough billing history for this analysis!")
	default:
		fmt.Fprintf(s.out, "Error: %v\n", err)
	}
}

// ---- commands ----

func (s *Shell) addCustomer() error {
	name, err := s.promptLine("Enter customer name: ")
	if err != nil {
		return err
	}
	address, err := s.promptLine("Enter address: ")
	if err != nil {
		return err
	}
	phone, err := s.promptLine("Enter phone number: ")
	if err != nil {
		return err
	}
	email, err := s.promptLine("Enter email: ")
	if err != nil {
		return err
	}
	class, err := s.promptClass()
	if err != nil {
		return err
	}
	meter, err := s.promptLine("Enter meter number: ")
	if err != nil {
		return err
	}

	customer, err := s.svc.AddCustomer(directory.Profile{
		Name:        name,
		Address:     address,
		Phone:       phone,
		Email:       email,
		Class:       class,
		MeterNumber: meter,
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "Customer added successfully! Customer ID: %d\n", customer.ID)
	return nil
}

func (s *Shell) viewCustomer() error {
	meter, err := s.promptLine("Enter meter number: ")
	if err != nil {
		return err
	}
	customer, err := s.svc.Customer(meter)
	if err != nil {
		return err
	}
	s.printCustomer(customer)
	return nil
}

func (s *Shell) generateBill() error {
	meter, err := s.promptLine("Enter meter number: ")
	if err != nil {
		return err
	}
	meterEnd, err := s.promptFloat("Enter current meter reading: ")
	if err != nil {
		return err
	}
	peak, err := s.promptFloat("Enter peak hours usage (2pm-8pm): ")
	if err != nil {
		return err
	}
	offPeak, err := s.promptFloat("Enter off-peak hours usage (8pm-2pm): ")
	if err != nil {
		return err
	}

	bill, err := s.svc.GenerateBill(meter, meterEnd, billing.UsageSplit{PeakUnits: peak, OffPeakUnits: offPeak})
	if err != nil {
		return err
	}
	fmt.Fprintln(s.out, "Bill generated successfully!")
	customer, err := s.svc.Customer(meter)
	if err != nil {
		return err
	}
	s.printBill(customer, bill)
	return nil
}

func (s *Shell) viewLatestBill() error {
	meter, err := s.promptLine("Enter meter number: ")
	if err != nil {
		return err
	}
	bill, err := s.svc.LatestBill(meter)
	if err != nil {
		return err
	}
	customer, err := s.svc.Customer(meter)
	if err != nil {
		return err
	}
	s.printBill(customer, bill)

	export, err := s.promptInt("Export bill as PDF? (1-Yes, 0-No): ")
	if err != nil || export != 1 {
		return err
	}
	path, err := billinterfaces.WriteBillPDF(s.reportDir, customer, bill)
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "Bill exported to %s\n", path)
	return nil
}

func (s *Shell) recordPayment() error {
	meter, err := s.promptLine("Enter meter number: ")
	if err != nil {
		return err
	}
	bills, err := s.svc.PaymentHistory(meter)
	if err != nil {
		return err
	}
	if len(bills) == 0 {
		fmt.Fprintln(s.out, "No bills found for this customer!")
		return nil
	}
	index, err := s.promptInt(fmt.Sprintf("Enter bill index (0-%d): ", len(bills)-1))
	if err != nil {
		return err
	}
	if index < 0 || index >= len(bills) {
		fmt.Fprintln(s.out, "Invalid bill index!")
		return nil
	}
	method, err := s.promptLine("Enter payment method (Cash/Credit Card/Bank Transfer): ")
	if err != nil {
		return err
	}
	if _, err := s.svc.RecordPayment(meter, index, method); err != nil {
		return err
	}
	fmt.Fprintln(s.out, "Payment recorded successfully!")
	return nil
}

func (s *Shell) paymentHistory() error {
	meter, err := s.promptLine("Enter meter number: ")
	if err != nil {
		return err
	}
	customer, err := s.svc.Customer(meter)
	if err != nil {
		return err
	}
	bills, err := s.svc.PaymentHistory(meter)
	if err != nil {
		return err
	}

	fmt.Fprintf(s.out, "\n===== Payment History for %s =====\n", customer.Name)
	if len(bills) == 0 {
		fmt.Fprintln(s.out, "No payment history found!")
		return nil
	}
	for _, bill := range bills {
		status := "Unpaid"
		if bill.Paid {
			status = "Paid"
		}
		fmt.Fprintf(s.out, "Bill ID: %d, Date: %s, Amount: $%.2f, Status: %s\n",
			bill.ID, bill.IssueDate.Format("02/01/2006"), bill.Amount, status)
		if bill.Paid {
			fmt.Fprintf(s.out, "  Payment Date: %s, Method: %s\n",
				bill.PaymentDate.Format("02/01/2006"), bill.PaymentMethod)
		}
	}
	fmt.Fprintln(s.out, "===================================")
	return nil
}

func (s *Shell) compare() error {
	meter, err := s.promptLine("Enter meter number: ")
	if err != nil {
		return err
	}
	cmp, err := s.svc.Compare(meter)
	if err != nil {
		return err
	}

	fmt.Fprintln(s.out, "\n===== Bill Comparison =====")
	fmt.Fprintf(s.out, "Current Bill (%s): $%.2f, %.2f units\n",
		cmp.Current.IssueDate.Format("02/01/2006"), cmp.Current.Amount, cmp.Current.TotalUsage)
	fmt.Fprintf(s.out, "Previous Bill (%s): $%.2f, %.2f units\n",
		cmp.Previous.IssueDate.Format("02/01/2006"), cmp.Previous.Amount, cmp.Previous.TotalUsage)
	fmt.Fprintln(s.out, "---------------------------")
	if cmp.UsageDiffPctOK {
		fmt.Fprintf(s.out, "Usage Difference: %.2f units (%.2f%%)\n", cmp.UsageDiff, cmp.UsageDiffPct)
	} else {
		fmt.Fprintf(s.out, "Usage Difference: %.2f units (previous usage was zero)\n", cmp.UsageDiff)
	}
	if cmp.AmountDiffPctOK {
		fmt.Fprintf(s.out, "Amount Difference: $%.2f (%.2f%%)\n", cmp.AmountDiff, cmp.AmountDiffPct)
	} else {
		fmt.Fprintf(s.out, "Amount Difference: $%.2f (previous amount was zero)\n", cmp.AmountDiff)
	}
	fmt.Fprintln(s.out, "===========================")

	if cmp.HighUsage {
		fmt.Fprintln(s.out, "\nALERT: Your usage has increased by more than 20% compared to last month!")
		fmt.Fprintln(s.out, "Tips to reduce consumption:")
		fmt.Fprintln(s.out, "1. Turn off lights when not in use")
		fmt.Fprintln(s.out, "2. Use energy-efficient appliances")
		fmt.Fprintln(s.out, "3. Reduce air conditioning usage")
		fmt.Fprintln(s.out, "4. Check for electrical leakages")
	}
	return nil
}

func (s *Shell) project() error {
	meter, err := s.promptLine("Enter meter number: ")
	if err != nil {
		return err
	}
	projection, err := s.svc.Project(meter)
	if err != nil {
		return err
	}

	fmt.Fprintln(s.out, "\n===== Next Month's Bill Projection =====")
	fmt.Fprintf(s.out, "Projected Usage: %.2f units\n", projection.ProjectedUsage)
	fmt.Fprintf(s.out, "Projected Amount: $%.2f\n", projection.ProjectedAmount)
	fmt.Fprintln(s.out, "---------------------------------------")
	fmt.Fprintf(s.out, "Last Month's Usage: %.2f units\n", projection.LastUsage)
	fmt.Fprintf(s.out, "Last Month's Amount: $%.2f\n", projection.LastAmount)
	fmt.Fprintln(s.out, "=======================================")

	fmt.Fprintln(s.out, "\nEnergy-Saving Tips:")
	fmt.Fprintln(s.out, "1. Switch to LED bulbs to save up to 80% on lighting costs")
	fmt.Fprintln(s.out, "2. Use smart power strips to eliminate phantom power usage")
	fmt.Fprintln(s.out, "3. Adjust your thermostat by 1-2 degrees to save up to 10% on heating/cooling")
	fmt.Fprintln(s.out, "4. Shift energy-intensive activities to off-peak hours (8pm-2pm)")
	return nil
}

func (s *Shell) alert() error {
	meter, err := s.promptLine("Enter meter number: ")
	if err != nil {
		return err
	}
	customer, err := s.svc.Customer(meter)
	if err != nil {
		return err
	}
	alert, err := s.svc.Alert(meter)
	if err != nil {
		return err
	}

	fmt.Fprintln(s.out, "\n===== Energy Usage Analysis =====")
	fmt.Fprintf(s.out, "Customer: %s\n", customer.Name)
	fmt.Fprintf(s.out, "Meter Number: %s\n", customer.MeterNumber)
	fmt.Fprintf(s.out, "Last Month's Usage: %.2f units\n", alert.LatestUsage)
	fmt.Fprintf(s.out, "Average Monthly Usage: %.2f units\n", alert.AverageUsage)
	if alert.MonthlyChangeOK {
		fmt.Fprintf(s.out, "Monthly Change: %.2f%%\n", alert.MonthlyChangePct)
	}
	fmt.Fprintln(s.out, "-------------------------------")

	switch alert.Level {
	case analytics.LevelHigh:
		fmt.Fprintf(s.out, "ALERT: Your usage is %.2f%% above your average!\n", alert.MagnitudePct)
		fmt.Fprintln(s.out, "\nPossible causes of high consumption:")
		fmt.Fprintln(s.out, "1. Weather changes (heating/cooling)")
		fmt.Fprintln(s.out, "2. New appliances or electronic devices")
		fmt.Fprintln(s.out, "3. Increased occupancy")
		fmt.Fprintln(s.out, "4. Faulty appliances or electrical leakages")
	case analytics.LevelLow:
		fmt.Fprintf(s.out, "NOTICE: Your usage is %.2f%% below your average. Good job!\n", alert.MagnitudePct)
	default:
		fmt.Fprintln(s.out, "Your usage is within normal range.")
	}

	fmt.Fprintf(s.out, "\nPeak Hours Usage: %.2f%% of total\n", alert.PeakSharePct)
	if alert.ShiftToOffPeak {
		fmt.Fprintln(s.out, "TIP: You can save money by shifting usage to off-peak hours (8pm-2pm).")
	}
	fmt.Fprintln(s.out, "===============================")
	return nil
}

func (s *Shell) updateCustomer() error {
	meter, err := s.promptLine("Enter meter number: ")
	if err != nil {
		return err
	}
	customer, err := s.svc.Customer(meter)
	if err != nil {
		return err
	}

	fmt.Fprintln(s.out, "\n===== Update Customer Information =====")
	fmt.Fprintln(s.out, "1. Update Name")
	fmt.Fprintln(s.out, "2. Update Address")
	fmt.Fprintln(s.out, "3. Update Phone")
	fmt.Fprintln(s.out, "4. Update Email")
	fmt.Fprintln(s.out, "5. Update Customer Type")
	fmt.Fprintln(s.out, "6. Change Active Status")
	fmt.Fprintln(s.out, "0. Back to Main Menu")
	choice, err := s.promptInt("Enter your choice: ")
	if err != nil {
		return err
	}

	switch choice {
	case 1:
		fmt.Fprintf(s.out, "Current Name: %s\n", customer.Name)
		name, err := s.promptLine("Enter new name: ")
		if err != nil {
			return err
		}
		if err := s.svc.UpdateName(meter, name); err != nil {
			return err
		}
		fmt.Fprintln(s.out, "Name updated successfully!")
	case 2:
		fmt.Fprintf(s.out, "Current Address: %s\n", customer.Address)
		address, err := s.promptLine("Enter new address: ")
		if err != nil {
			return err
		}
		if err := s.svc.UpdateAddress(meter, address); err != nil {
			return err
		}
		fmt.Fprintln(s.out, "Address updated successfully!")
	case 3:
		fmt.Fprintf(s.out, "Current Phone: %s\n", customer.Phone)
		phone, err := s.promptLine("Enter new phone: ")
		if err != nil {
			return err
		}
		if err := s.svc.UpdatePhone(meter, phone); err != nil {
			return err
		}
		fmt.Fprintln(s.out, "Phone updated successfully!")
	case 4:
		fmt.Fprintf(s.out, "Current Email: %s\n", customer.Email)
		email, err := s.promptLine("Enter new email: ")
		if err != nil {
			return err
		}
		if err := s.svc.UpdateEmail(meter, email); err != nil {
			return err
		}
		fmt.Fprintln(s.out, "Email updated successfully!")
	case 5:
		fmt.Fprintf(s.out, "Current Customer Type: %s\n", customer.Class.Display())
		class, err := s.promptClass()
		if err != nil {
			return err
		}
		if err := s.svc.UpdateClass(meter, class); err != nil {
			return err
		}
		fmt.Fprintln(s.out, "Customer type updated successfully!")
	case 6:
		next := "Inactive"
		if !customer.Active {
			next = "Active"
		}
		fmt.Fprintf(s.out, "Current Status: %s\n", statusText(customer.Active))
		confirm, err := s.promptInt(fmt.Sprintf("Change status to %s? (1-Yes, 0-No): ", next))
		if err != nil {
			return err
		}
		if confirm == 1 {
			if err := s.svc.SetActive(meter, !customer.Active); err != nil {
				return err
			}
			fmt.Fprintln(s.out, "Status updated successfully!")
		}
	case 0:
		return nil
	default:
		fmt.Fprintln(s.out, "Invalid choice!")
	}
	return nil
}

func (s *Shell) listCustomers() {
	customers := s.svc.ListCustomers()
	if len(customers) == 0 {
		fmt.Fprintln(s.out, "No customers found!")
		return
	}
	fmt.Fprintln(s.out, "\n===== All Customers =====")
	s.printCustomerTable(customers)
	fmt.Fprintf(s.out, "Total Customers: %d\n", len(customers))
}

func (s *Shell) searchCustomer() error {
	if len(s.svc.ListCustomers()) == 0 {
		fmt.Fprintln(s.out, "No customers found!")
		return nil
	}

	fmt.Fprintln(s.out, "\n===== Search Customer =====")
	fmt.Fprintln(s.out, "1. Search by Name")
	fmt.Fprintln(s.out, "2. Search by Meter Number")
	fmt.Fprintln(s.out, "3. Search by Customer ID")
	fmt.Fprintln(s.out, "4. Search by Phone")
	choice, err := s.promptInt("Enter your choice: ")
	if err != nil {
		return err
	}

	var found []*directory.Customer
	switch choice {
	case 1:
		term, err := s.promptLine("Enter customer name: ")
		if err != nil {
			return err
		}
		found = s.svc.SearchByName(term)
	case 2:
		term, err := s.promptLine("Enter meter number: ")
		if err != nil {
			return err
		}
		found = s.svc.SearchByMeter(term)
	case 3:
		id, err := s.promptInt("Enter customer ID: ")
		if err != nil {
			return err
		}
		if customer, err := s.svc.CustomerByID(id); err == nil {
			found = append(found, customer)
		}
	case 4:
		term, err := s.promptLine("Enter phone number: ")
		if err != nil {
			return err
		}
		found = s.svc.SearchByPhone(term)
	default:
		fmt.Fprintln(s.out, "Invalid choice!")
		return nil
	}

	fmt.Fprintln(s.out, "\n--- Search Results ---")
	s.printCustomerTable(found)
	fmt.Fprintf(s.out, "Total Results: %d\n", len(found))
	return nil
}

func (s *Shell) report() error {
	report := s.svc.MonthlyReport()

	textPath, err := reportinterfaces.WriteTextReport(s.reportDir, report)
	if err != nil {
		return err
	}
	pdfPath, xlsxPath, err := reportinterfaces.WriteReportExports(s.reportDir, report)
	if err != nil {
		return err
	}
	s.logger.Printf("period report written: %s", textPath)
	fmt.Fprintf(s.out, "Report generated successfully! Saved as %s\n", textPath)
	fmt.Fprintf(s.out, "Exports: %s, %s\n", pdfPath, xlsxPath)
	return nil
}

// ---- rendering ----

func (s *Shell) printCustomer(c *directory.Customer) {
	fmt.Fprintln(s.out, "\n------ Customer Details ------")
	fmt.Fprintf(s.out, "ID: %d\n", c.ID)
	fmt.Fprintf(s.out, "Name: %s\n", c.Name)
	fmt.Fprintf(s.out, "Address: %s\n", c.Address)
	fmt.Fprintf(s.out, "Phone: %s\n", c.Phone)
	fmt.Fprintf(s.out, "Email: %s\n", c.Email)
	fmt.Fprintf(s.out, "Meter Number: %s\n", c.MeterNumber)
	fmt.Fprintf(s.out, "Customer Type: %s\n", c.Class.Display())
	fmt.Fprintf(s.out, "Connection Date: %s\n", c.ConnectionDate.Format("02/01/2006"))
	fmt.Fprintf(s.out, "Active Status: %s\n", statusText(c.Active))
	fmt.Fprintf(s.out, "Number of Bills: %d\n", c.History.Len())
	fmt.Fprintln(s.out, "-----------------------------")
}

func (s *Shell) printCustomerTable(customers []*directory.Customer) {
	fmt.Fprintf(s.out, "%-5s %-20s %-15s %-15s %-10s\n", "ID", "Name", "Meter Number", "Type", "Status")
	fmt.Fprintln(s.out, "---------------------------------------------------------------")
	for _, c := range customers {
		fmt.Fprintf(s.out, "%-5d %-20s %-15s %-15s %-10s\n",
			c.ID, c.Name, c.MeterNumber, c.Class.Display(), statusText(c.Active))
	}
	fmt.Fprintln(s.out, "---------------------------------------------------------------")
}

func (s *Shell) printBill(c *directory.Customer, bill *billing.Bill) {
	fmt.Fprintln(s.out, "\n========== ELECTRIC BILL ==========")
	fmt.Fprintf(s.out, "Bill ID: %d\n", bill.ID)
	fmt.Fprintf(s.out, "Date: %s\n", bill.IssueDate.Format("02/01/2006"))
	fmt.Fprintf(s.out, "Due Date: %s\n", bill.DueDate.Format("02/01/2006"))
	fmt.Fprintf(s.out, "Customer ID: %d\n", c.ID)
	fmt.Fprintf(s.out, "Name: %s\n", c.Name)
	fmt.Fprintf(s.out, "Address: %s\n", c.Address)
	fmt.Fprintf(s.out, "Meter Number: %s\n", c.MeterNumber)
	fmt.Fprintf(s.out, "Customer Type: %s\n", c.Class.Display())
	fmt.Fprintln(s.out, "-------------------------------")
	fmt.Fprintf(s.out, "Previous Reading: %.2f units\n", bill.MeterStart)
	fmt.Fprintf(s.out, "Current Reading: %.2f units\n", bill.MeterEnd)
	fmt.Fprintf(s.out, "Total Consumption: %.2f units\n", bill.TotalUsage)
	fmt.Fprintln(s.out, "-------------------------------")
	fmt.Fprintf(s.out, "Peak Hours Usage (2pm-8pm): %.2f units\n", bill.Split.PeakUnits)
	fmt.Fprintf(s.out, "Off-Peak Hours Usage (8pm-2pm): %.2f units\n", bill.Split.OffPeakUnits)
	fmt.Fprintln(s.out, "-------------------------------")
	fmt.Fprintf(s.out, "Total Amount Due: $%.2f\n", bill.Amount)
	fmt.Fprintf(s.out, "Payment Status: %s\n", paidText(bill.Paid))
	if bill.Paid {
		fmt.Fprintf(s.out, "Payment Date: %s\n", bill.PaymentDate.Format("02/01/2006"))
		fmt.Fprintf(s.out, "Payment Method: %s\n", bill.PaymentMethod)
	}
	fmt.Fprintln(s.out, "===============================")
}

func statusText(active bool) string {
	if active {
		return "Active"
	}
	return "Inactive"
}

func paidText(paid bool) string {
	if paid {
		return "Paid"
	}
	return "Unpaid"
}

// ---- prompts ----

func (s *Shell) promptLine(prompt string) (string, error) {
	fmt.Fprint(s.out, prompt)
	line, err := s.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (s *Shell) promptInt(prompt string) (int, error) {
	line, err := s.promptLine(prompt)
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(line)
}

func (s *Shell) promptFloat(prompt string) (float64, error) {
	line, err := s.promptLine(prompt)
	if err != nil {
		return 0, err
	}
	return strconv.ParseFloat(line, 64)
}

func (s *Shell) promptClass() (billing.CustomerClass, error) {
	choice, err := s.promptInt("Enter customer type (0-Residential, 1-Commercial, 2-Industrial): ")
	if err != nil {
		return "", err
	}
	classes := billing.Classes()
	if choice < 0 || choice >= len(classes) {
		return "", billing.ErrUnknownClass
	}
	return classes[choice], nil
}
