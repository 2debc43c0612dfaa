package ui

// MenuOption identifies one entry of the main menu.
type MenuOption int

const (
	MenuUnknown MenuOption = iota
	MenuAddMember
	MenuListMembersSimple
	MenuUpdateMember
	MenuDeleteMember
	MenuAddItem
	MenuListItems
	MenuUpdateItem
	MenuDeleteItem
	MenuCreateContract
	MenuListContracts
	MenuAdvanceDay
	MenuExit
	MenuListMembersVerbose
)

// MenuOptionFromInt maps the number the user typed to a menu option.
// Unrecognized numbers map to MenuUnknown.
func MenuOptionFromInt(n int) MenuOption {
	if n < int(MenuAddMember) || n > int(MenuListMembersVerbose) {
		return MenuUnknown
	}
	return MenuOption(n)
}

const mainMenu = `
Rental System Menu:
1. Add Member
2. List Members (Simple)
3. Update Member
4. Delete Member
5. Add Item
6. List Items
7. Update Item
8. Delete Item
9. Create Contract
10. List Contracts
11. Advance Day
12. Exit
13. List Members (Verbose)
`
