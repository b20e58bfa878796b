package cli

import (
	"context"
	"fmt"
)

func (a *App) Like(ctx context.Context) error {

	id, err := GetSimpleText(a.reader, "Enter post id", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}

	reqCtx, cancel := a.requestCtx(ctx)
	defer cancel()

	if err := a.client.Like(reqCtx, id); err != nil {
		fmt.Fprintf(a.out, "Could not like post: %s\n", err.Error())
		return err
	}

	fmt.Fprintln(a.out, "Liked")
	return nil
}

func (a *App) Unlike(ctx context.Context) error {

	id, err := GetSimpleText(a.reader, "Enter post id", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}

	reqCtx, cancel := a.requestCtx(ctx)
	defer cancel()

	if err := a.client.Unlike(reqCtx, id); err != nil {
		fmt.Fprintf(a.out, "Could not unlike post: %s\n", err.Error())
		return err
	}

	fmt.Fprintln(a.out, "Like removed")
	return nil
}
