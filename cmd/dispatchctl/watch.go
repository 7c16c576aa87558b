package main

import (
	"crew-dispatch/domain"
	"crew-dispatch/infrastructure/socket"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"

	"github.com/gookit/color"
	"github.com/gorilla/websocket"
	"github.com/spf13/cobra"
)

func newWatchCmd() *cobra.Command {
	var (
		url    string
		userID string
		token  string
	)
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Connect as a user and print every frame pushed to it",
		RunE: func(cmd *cobra.Command, _ []string) error {
			conn, _, err := websocket.DefaultDialer.Dial(url, http.Header{})
			if err != nil {
				return fmt.Errorf("dial %s: %w", url, err)
			}
			defer conn.Close()

			identity, err := json.Marshal(socket.Identity{UserID: userID, Token: token})
			if err != nil {
				return err
			}
			if err := conn.WriteJSON(socket.Frame{Event: socket.EventSetUserID, Data: identity}); err != nil {
				return err
			}

			interrupt, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			go func() {
				<-interrupt.Done()
				_ = conn.WriteControl(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), zeroDeadline)
				_ = conn.Close()
			}()

			for {
				var frame socket.Frame
				if err := conn.ReadJSON(&frame); err != nil {
					if interrupt.Err() != nil || websocket.IsCloseError(err, websocket.CloseNormalClosure) {
						return nil
					}
					return err
				}
				printFrame(cmd.OutOrStdout(), frame)
			}
		},
	}
	cmd.Flags().StringVar(&url, "url", "ws://localhost:4000/ws", "websocket endpoint")
	cmd.Flags().StringVar(&userID, "user", "", "user id announced with setUserId")
	cmd.Flags().StringVar(&token, "token", "", "optional bearer token bound to the user")
	_ = cmd.MarkFlagRequired("user")
	return cmd
}

func printFrame(w io.Writer, frame socket.Frame) {
	style := color.Cyan
	switch frame.Event {
	case socket.EventError:
		style = color.Red
	case socket.EventConnected, socket.EventIdentified:
		style = color.Green
	case domain.EventNotification:
		style = color.Yellow
	}
	_, _ = fmt.Fprintf(w, "%s %s\n", style.Sprintf("[%s]", frame.Event), string(frame.Data))
}
