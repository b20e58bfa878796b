package cli

import (
	"context"
	"fmt"
)

const listPageSize = 10

func (a *App) AddPost(ctx context.Context) error {

	title, err := GetSimpleText(a.reader, "Enter title", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}

	content, err := GetMultiline(a.reader, "Enter content", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}

	reqCtx, cancel := a.requestCtx(ctx)
	defer cancel()

	post, err := a.client.CreatePost(reqCtx, title, content, true)
	if err != nil {
		fmt.Fprintf(a.out, "Could not create post: %s\n", err.Error())
		return err
	}

	fmt.Fprintf(a.out, "Created post %s\n", post.ID)
	return nil
}

func (a *App) List(ctx context.Context) error {

	reqCtx, cancel := a.requestCtx(ctx)
	defer cancel()

	posts, err := a.client.ListPosts(reqCtx, listPageSize, 0, "")
	if err != nil {
		fmt.Fprintf(a.out, "Could not list posts: %s\n", err.Error())
		return err
	}

	if len(posts) == 0 {
		fmt.Fprintln(a.out, "No posts yet")
		return nil
	}

	for _, p := range posts {
		fmt.Fprintf(a.out, "%s  %-30s  likes: %d\n", p.ID, p.Title, p.Likes)
	}
	return nil
}

func (a *App) Show(ctx context.Context) error {

	id, err := GetSimpleText(a.reader, "Enter post id", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}

	reqCtx, cancel := a.requestCtx(ctx)
	defer cancel()

	post, err := a.client.GetPost(reqCtx, id)
	if err != nil {
		fmt.Fprintf(a.out, "Could not fetch post: %s\n", err.Error())
		return err
	}

	fmt.Fprintf(a.out, "Title:   %s\nAuthor:  %s\nLikes:   %d\nCreated: %s\n\n%s\n",
		post.Title, post.UserID, post.Likes, post.Created.Format("2006-01-02 15:04"), post.Content)
	return nil
}

func (a *App) DeletePost(ctx context.Context) error {

	id, err := GetSimpleText(a.reader, "Enter post id", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}

	reqCtx, cancel := a.requestCtx(ctx)
	defer cancel()

	if err := a.client.DeletePost(reqCtx, id); err != nil {
		fmt.Fprintf(a.out, "Could not delete post: %s\n", err.Error())
		return err
	}

	fmt.Fprintln(a.out, "Deleted")
	return nil
}
