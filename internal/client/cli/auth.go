package cli

import (
	"context"
	"fmt"
)

func (a *App) Register(ctx context.Context) error {

	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}

	password, err := GetPassword(a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}
	defer wipe(password)

	reqCtx, cancel := a.requestCtx(ctx)
	defer cancel()

	user, err := a.client.Register(reqCtx, email, password)
	if err != nil {
		fmt.Fprintf(a.out, "Registration unsuccessful: %s\n", err.Error())
		return err
	}

	fmt.Fprintf(a.out, "Registered %s, you can now log in\n", user.Email)
	return nil
}

func (a *App) Login(ctx context.Context) error {

	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}

	password, err := GetPassword(a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}
	defer wipe(password)

	reqCtx, cancel := a.requestCtx(ctx)
	defer cancel()

	if err := a.client.Login(reqCtx, email, password); err != nil {
		fmt.Fprintf(a.out, "Login unsuccessful: %s\n", err.Error())
		return err
	}

	a.userEmail = email
	fmt.Fprintln(a.out, "Login successful")
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	a.client.Logout()
	a.userEmail = ""
	fmt.Fprintln(a.out, "Logged out")
	return nil
}

func wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
