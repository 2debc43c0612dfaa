// Package ui renders the text menu and owns all console input parsing. The
// services receive already-parsed, validated primitives; every service error
// is converted to a specific user-facing message here.
package ui

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"stufflending/internal/clock"
	"stufflending/internal/domain"
	"stufflending/internal/service"
)

type UI struct {
	in        *bufio.Reader
	out       io.Writer
	members   service.MemberService
	items     service.ItemService
	contracts service.ContractService
	clock     *clock.Clock
}

func New(
	in io.Reader,
	out io.Writer,
	members service.MemberService,
	items service.ItemService,
	contracts service.ContractService,
	clk *clock.Clock,
) *UI {
	return &UI{
		in:        bufio.NewReader(in),
		out:       out,
		members:   members,
		items:     items,
		contracts: contracts,
		clock:     clk,
	}
}

// Run shows the main menu until the user exits or input ends.
func (u *UI) Run(ctx context.Context) error {
	for {
		fmt.Fprint(u.out, mainMenu)
		choice, err := u.promptInt(fmt.Sprintf("Enter an option (current day: %d):", u.clock.CurrentDay()))
		if err != nil {
			// Input stream closed; leave quietly.
			return nil
		}

		switch MenuOptionFromInt(choice) {
		case MenuAddMember:
			u.addMember(ctx)
		case MenuListMembersSimple:
			u.report(u.showMembersSimple(ctx))
		case MenuUpdateMember:
			u.updateMember(ctx)
		case MenuDeleteMember:
			u.deleteMember(ctx)
		case MenuAddItem:
			u.addItem(ctx)
		case MenuListItems:
			u.report(u.showItems(ctx))
		case MenuUpdateItem:
			u.updateItem(ctx)
		case MenuDeleteItem:
			u.deleteItem(ctx)
		case MenuCreateContract:
			u.createContract(ctx)
		case MenuListContracts:
			u.report(u.showContracts(ctx))
		case MenuAdvanceDay:
			u.advanceDay(ctx)
		case MenuExit:
			fmt.Fprintln(u.out, "Exiting the system. Goodbye!")
			return nil
		case MenuListMembersVerbose:
			u.report(u.showMembersVerbose(ctx))
		default:
			fmt.Fprintln(u.out, "Invalid input / option. Please enter a valid integer.")
		}
	}
}

// report prints the mapped message for a failed read-only operation.
func (u *UI) report(err error) {
	if err != nil {
		fmt.Fprintln(u.out, errorMessage(err))
	}
}

func (u *UI) addMember(ctx context.Context) {
	name, err := u.readLine("Enter the member name (First Last):")
	if err != nil {
		return
	}
	email, err := u.readLine("Enter the member email (example@domain.com):")
	if err != nil {
		return
	}
	phone, err := u.readLine("Enter the member phone (8 to 15 digits):")
	if err != nil {
		return
	}

	member, svcErr := u.members.CreateMember(ctx, name, email, phone)
	if svcErr != nil {
		fmt.Fprintln(u.out, errorMessage(svcErr))
		return
	}
	fmt.Fprintf(u.out, "Member created successfully. ID: %s\n", member.ID)
}

func (u *UI) updateMember(ctx context.Context) {
	id, err := u.readLine("Enter the member ID to update:")
	if err != nil {
		return
	}
	name, err := u.readLine("Enter the new name:")
	if err != nil {
		return
	}
	email, err := u.readLine("Enter the new email:")
	if err != nil {
		return
	}
	phone, err := u.readLine("Enter the new phone:")
	if err != nil {
		return
	}

	if _, svcErr := u.members.UpdateMember(ctx, id, name, email, phone); svcErr != nil {
		fmt.Fprintln(u.out, errorMessage(svcErr))
		return
	}
	fmt.Fprintln(u.out, "Member updated successfully.")
}

func (u *UI) deleteMember(ctx context.Context) {
	id, err := u.readLine("Enter the member ID to delete:")
	if err != nil {
		return
	}
	if svcErr := u.members.DeleteMember(ctx, id); svcErr != nil {
		fmt.Fprintln(u.out, errorMessage(svcErr))
		return
	}
	fmt.Fprintln(u.out, "Member deleted successfully.")
}

func (u *UI) addItem(ctx context.Context) {
	ownerID, err := u.readLine("Enter the owner member ID:")
	if err != nil {
		return
	}
	name, err := u.readLine("Enter the item name:")
	if err != nil {
		return
	}
	description, err := u.readLine("Enter the item description:")
	if err != nil {
		return
	}
	category, err := u.readLine("Enter the category (VEHICLE, TOOL, ELECTRONICS, FURNITURE, OTHER):")
	if err != nil {
		return
	}
	cost, err := u.promptDecimal("Enter the cost per day:")
	if err != nil {
		return
	}

	item, svcErr := u.items.AddItem(ctx, ownerID, name, description, category, cost)
	if svcErr != nil {
		fmt.Fprintln(u.out, errorMessage(svcErr))
		return
	}
	fmt.Fprintf(u.out, "Item created successfully. ID: %d\n", item.ID)
}

func (u *UI) updateItem(ctx context.Context) {
	id, err := u.promptInt("Enter the item ID to update:")
	if err != nil {
		return
	}
	name, err := u.readLine("Enter the new name:")
	if err != nil {
		return
	}
	description, err := u.readLine("Enter the new description:")
	if err != nil {
		return
	}
	category, err := u.readLine("Enter the new category:")
	if err != nil {
		return
	}
	cost, err := u.promptDecimal("Enter the new cost per day:")
	if err != nil {
		return
	}

	if _, svcErr := u.items.UpdateItem(ctx, id, name, description, category, cost); svcErr != nil {
		fmt.Fprintln(u.out, errorMessage(svcErr))
		return
	}
	fmt.Fprintln(u.out, "Item updated successfully.")
}

func (u *UI) deleteItem(ctx context.Context) {
	id, err := u.promptInt("Enter the item ID to delete:")
	if err != nil {
		return
	}
	if svcErr := u.items.DeleteItem(ctx, id); svcErr != nil {
		fmt.Fprintln(u.out, errorMessage(svcErr))
		return
	}
	fmt.Fprintln(u.out, "Item deleted successfully.")
}

func (u *UI) createContract(ctx context.Context) {
	itemID, err := u.promptInt("Enter the item ID:")
	if err != nil {
		return
	}
	renterID, err := u.readLine("Enter the renter member ID:")
	if err != nil {
		return
	}
	startDay, err := u.promptInt("Enter the start day (e.g., day 5):")
	if err != nil {
		return
	}
	endDay, err := u.promptInt("Enter the end day (e.g., day 7):")
	if err != nil {
		return
	}

	contract, svcErr := u.contracts.CreateContract(ctx, itemID, renterID, startDay, endDay)
	if svcErr != nil {
		fmt.Fprintln(u.out, errorMessage(svcErr))
		return
	}
	u.showContractCreated(contract)
}

func (u *UI) advanceDay(ctx context.Context) {
	days, err := u.promptInt("Enter the number of days to advance:")
	if err != nil {
		return
	}

	day, svcErr := u.clock.AdvanceDays(ctx, days)
	if svcErr != nil {
		// The clock still moved unless the argument itself was rejected.
		fmt.Fprintln(u.out, errorMessage(svcErr))
		if errors.Is(svcErr, domain.ErrNegativeDays) {
			return
		}
	}
	fmt.Fprintf(u.out, "Current day has been advanced to: %d\n", day)
}
