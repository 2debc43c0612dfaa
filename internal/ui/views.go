package ui

import (
	"context"
	"fmt"
	"text/tabwriter"

	"stufflending/internal/domain"
)

func (u *UI) showMembersSimple(ctx context.Context) error {
	members, err := u.members.ListMembers(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintln(u.out, "\nSimple Member List:")
	if len(members) == 0 {
		fmt.Fprintln(u.out, "No members found.")
		return nil
	}
	for _, m := range members {
		owned, err := u.members.ListOwnedItems(ctx, m.ID)
		if err != nil {
			return err
		}
		fmt.Fprintf(u.out, "ID: %s, Name: %s, Email: %s, Credits: %s, Owned Items: %d\n",
			m.ID, m.Name, m.Email, m.Credits.StringFixed(2), len(owned))
	}
	return nil
}

func (u *UI) showMembersVerbose(ctx context.Context) error {
	members, err := u.members.ListMembers(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintln(u.out, "\nVerbose Member List:")
	if len(members) == 0 {
		fmt.Fprintln(u.out, "No members found.")
		return nil
	}
	for _, m := range members {
		fmt.Fprintf(u.out, "\nMember ID: %s\nName: %s\nEmail: %s\nPhone: %s\nCredits: %s\nOwned Items:\n",
			m.ID, m.Name, m.Email, m.Phone, m.Credits.StringFixed(2))
		owned, err := u.members.ListOwnedItems(ctx, m.ID)
		if err != nil {
			return err
		}
		if len(owned) == 0 {
			fmt.Fprintln(u.out, "No items owned.")
			continue
		}
		for _, it := range owned {
			fmt.Fprintf(u.out, "  - Item ID: %d, Name: %s, Cost per Day: %s\n",
				it.ID, it.Name, it.CostPerDay.StringFixed(2))
		}
	}
	return nil
}

func (u *UI) showItems(ctx context.Context) error {
	items, err := u.items.ListItems(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintln(u.out, "\nList of Items:")
	if len(items) == 0 {
		fmt.Fprintln(u.out, "No items found.")
		return nil
	}

	w := tabwriter.NewWriter(u.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tCATEGORY\tCOST/DAY\tAVAILABLE\tOWNER")
	for _, it := range items {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%t\t%s\n",
			it.ID, it.Name, it.Category, it.CostPerDay.StringFixed(2), it.Available, it.OwnerID)
	}
	return w.Flush()
}

func (u *UI) showContracts(ctx context.Context) error {
	contracts, err := u.contracts.ListContracts(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintln(u.out, "\nList of Contracts:")
	if len(contracts) == 0 {
		fmt.Fprintln(u.out, "No contracts found.")
		return nil
	}

	w := tabwriter.NewWriter(u.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tITEM\tRENTER\tDAYS\tTOTAL COST\tSTATUS")
	for _, c := range contracts {
		fmt.Fprintf(w, "%s\t%s (#%d)\t%s\t%d-%d\t%s\t%s\n",
			c.ID, c.ItemName, c.ItemID, c.RenterName, c.StartDay, c.EndDay,
			c.TotalCost.StringFixed(2), c.Status)
	}
	return w.Flush()
}

func (u *UI) showContractCreated(c *domain.Contract) {
	fmt.Fprintln(u.out, "Contract created successfully:")
	fmt.Fprintf(u.out, "  Contract ID: %s\n  Item: %s (#%d)\n  Renter: %s\n  Days: %d-%d\n  Total Cost: %s\n",
		c.ID, c.ItemName, c.ItemID, c.RenterName, c.StartDay, c.EndDay, c.TotalCost.StringFixed(2))
}
