package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"
	"time"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"

	parleyv1 "github.com/matheus3301/parley/gen/parley/v1"
	"github.com/matheus3301/parley/internal/client"
	"github.com/matheus3301/parley/internal/config"
	"github.com/matheus3301/parley/internal/identity"
)

const callTimeout = 10 * time.Second

type cli struct {
	c       *client.Client
	user    string
	jsonOut bool
}

func main() {
	configFlag := flag.String("config", "", "config file path (default ~/.parley/config.toml)")
	instanceFlag := flag.String("instance", "", "instance name (overrides config)")
	addrFlag := flag.String("addr", "", "daemon address: socket path or host:port (default instance socket)")
	tokenFlag := flag.String("token", os.Getenv("PARLEY_TOKEN"), "bearer token (default $PARLEY_TOKEN)")
	asFlag := flag.String("as", "", "mint a token for user[:name] with the configured secret")
	jsonFlag := flag.Bool("json", false, "output in JSON format")
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		printUsage()
		os.Exit(1)
	}

	cfg, err := config.Resolve(*configFlag, *instanceFlag)
	if err != nil {
		fail(err)
	}

	if args[0] == "token" {
		cmdToken(cfg, args[1:])
		return
	}

	tok := *tokenFlag
	var user string
	if *asFlag != "" {
		var name string
		user, name, _ = strings.Cut(*asFlag, ":")
		tok = mint(cfg, user, name)
	} else {
		user = subject(cfg, tok)
	}
	if tok == "" {
		fail(errors.New("no credentials: pass --token, set PARLEY_TOKEN or use --as"))
	}

	addr := *addrFlag
	if addr == "" {
		addr = cfg.SocketPath()
	}
	c, err := client.New(addr, tok, client.WithMessageLimit(cfg.MessageLimit()))
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: cannot connect to daemon at %s: %v\n", addr, err)
		os.Exit(1)
	}
	defer func() { _ = c.Close() }()

	app := &cli{c: c, user: user, jsonOut: *jsonFlag}

	if args[0] == "watch" {
		app.watch(args[1:])
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), callTimeout)
	defer cancel()

	switch args[0] {
	case "open":
		need(args, 2, "open <peer-id> [peer-name]")
		app.open(ctx, args[1], argOr(args, 2, ""))
	case "conversations":
		app.conversations(ctx)
	case "send":
		need(args, 3, "send <conversation-id> <text>")
		app.send(ctx, args[1], strings.Join(args[2:], " "))
	case "sendfile":
		need(args, 3, "sendfile <conversation-id> <path> [caption]")
		app.sendFile(ctx, args[1], args[2], strings.Join(args[3:], " "))
	case "history":
		need(args, 2, "history <conversation-id> [before-seq]")
		app.history(ctx, args[1], argOr(args, 2, "0"))
	case "search":
		need(args, 3, "search <conversation-id> <term>")
		app.search(ctx, args[1], strings.Join(args[2:], " "))
	case "read":
		need(args, 2, "read <conversation-id>")
		app.read(ctx, args[1])
	case "presence":
		need(args, 2, "presence <user-id> | presence set <online|offline>")
		if args[1] == "set" {
			need(args, 3, "presence set <online|offline>")
			app.setPresence(ctx, args[2])
		} else {
			app.presence(ctx, args[1])
		}
	case "online":
		app.online(ctx)
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", args[0])
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "usage: parleyctl [--config <path>] [--instance <name>] [--token <jwt> | --as <user[:name]>] [--json] <command>")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "commands:")
	fmt.Fprintln(os.Stderr, "  token <user-id> [name]               Mint a bearer token")
	fmt.Fprintln(os.Stderr, "  open <peer-id> [peer-name]           Create or get a conversation")
	fmt.Fprintln(os.Stderr, "  conversations                        List your conversations")
	fmt.Fprintln(os.Stderr, "  send <conversation-id> <text>        Send a text message")
	fmt.Fprintln(os.Stderr, "  sendfile <conversation-id> <path>    Send a file")
	fmt.Fprintln(os.Stderr, "  history <conversation-id> [seq]      Show messages before seq")
	fmt.Fprintln(os.Stderr, "  search <conversation-id> <term>      Search a conversation")
	fmt.Fprintln(os.Stderr, "  read <conversation-id>               Mark a conversation read")
	fmt.Fprintln(os.Stderr, "  presence <user-id>                   Show presence")
	fmt.Fprintln(os.Stderr, "  presence set <online|offline>        Set your presence")
	fmt.Fprintln(os.Stderr, "  online                               List users currently online")
	fmt.Fprintln(os.Stderr, "  watch <topic>...                     Stream events (messages:<id>, conversations:<user>, presence:<user>)")
}

func cmdToken(cfg *config.Config, args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "usage: parleyctl token <user-id> [name]")
		os.Exit(1)
	}
	fmt.Println(mint(cfg, args[0], argOr(args, 1, "")))
}

func mint(cfg *config.Config, userID, name string) string {
	j, err := identity.NewJWT(cfg.Identity.JWTSecret, cfg.Identity.Issuer, cfg.Identity.TokenTTL.Duration)
	if err != nil {
		fail(err)
	}
	tok, err := j.Issue(identity.Identity{UserID: userID, Name: name})
	if err != nil {
		fail(err)
	}
	return tok
}

func (a *cli) open(ctx context.Context, peerID, peerName string) {
	resp, err := a.c.Messaging.CreateOrGetConversation(ctx, &parleyv1.CreateOrGetConversationRequest{PeerId: peerID, PeerName: peerName})
	if err != nil {
		fail(err)
	}
	if a.jsonOut {
		outputJSON(resp)
		return
	}
	verb := "Existing"
	if resp.Created {
		verb = "Created"
	}
	fmt.Printf("%s conversation %s\n", verb, resp.Conversation.Id)
}

func (a *cli) conversations(ctx context.Context) {
	resp, err := a.c.Messaging.ListConversations(ctx, &parleyv1.ListConversationsRequest{})
	if err != nil {
		fail(err)
	}
	if a.jsonOut {
		outputJSON(resp)
		return
	}
	if len(resp.Conversations) == 0 {
		fmt.Println("No conversations.")
		return
	}
	me := a.user
	for _, c := range resp.Conversations {
		var peer string
		var unread int32
		for _, p := range c.Participants {
			if p.UserId == me {
				unread = p.UnreadCount
				continue
			}
			peer = p.UserId
			if p.Name != "" {
				peer = fmt.Sprintf("%s (%s)", p.Name, p.UserId)
			}
		}
		fmt.Printf("%-38s %-30s unread=%-3d %s\n", c.Id, peer, unread, c.LastMessage)
	}
}

func (a *cli) send(ctx context.Context, convID, text string) {
	resp, err := a.c.Messaging.SendText(ctx, &parleyv1.SendTextRequest{ConversationId: convID, Text: text})
	if err != nil {
		fail(err)
	}
	a.printMessage(resp.Message)
}

func (a *cli) sendFile(ctx context.Context, convID, path, caption string) {
	data, err := os.ReadFile(path)
	if err != nil {
		fail(err)
	}
	resp, err := a.c.Messaging.SendFile(ctx, &parleyv1.SendFileRequest{
		ConversationId: convID,
		FileName:       filepath.Base(path),
		Caption:        caption,
		Data:           data,
	})
	if err != nil {
		fail(err)
	}
	a.printMessage(resp.Message)
}

func (a *cli) history(ctx context.Context, convID, before string) {
	seq, err := strconv.ParseInt(before, 10, 64)
	if err != nil {
		fail(fmt.Errorf("before-seq: %w", err))
	}
	resp, err := a.c.Messaging.ListMessages(ctx, &parleyv1.ListMessagesRequest{ConversationId: convID, BeforeSeq: seq})
	if err != nil {
		fail(err)
	}
	if a.jsonOut {
		outputJSON(resp)
		return
	}
	for _, m := range resp.Messages {
		a.printMessage(m)
	}
	if resp.HasMore && len(resp.Messages) > 0 {
		fmt.Printf("(more: parleyctl history %s %d)\n", convID, resp.Messages[0].Seq)
	}
}

func (a *cli) search(ctx context.Context, convID, term string) {
	resp, err := a.c.Messaging.Search(ctx, &parleyv1.SearchRequest{ConversationId: convID, Term: term})
	if err != nil {
		fail(err)
	}
	if a.jsonOut {
		outputJSON(resp)
		return
	}
	if len(resp.Messages) == 0 {
		fmt.Println("No matches.")
		return
	}
	for _, m := range resp.Messages {
		a.printMessage(m)
	}
}

func (a *cli) read(ctx context.Context, convID string) {
	resp, err := a.c.Messaging.MarkConversationRead(ctx, &parleyv1.MarkConversationReadRequest{ConversationId: convID})
	if err != nil {
		fail(err)
	}
	if a.jsonOut {
		outputJSON(resp)
		return
	}
	fmt.Printf("Conversation %s read.\n", convID)
}

func (a *cli) presence(ctx context.Context, userID string) {
	resp, err := a.c.Messaging.GetPresence(ctx, &parleyv1.GetPresenceRequest{UserId: userID})
	if err != nil {
		fail(err)
	}
	a.printPresence(resp.Presence)
}

func (a *cli) setPresence(ctx context.Context, state string) {
	var online bool
	switch state {
	case "online":
		online = true
	case "offline":
	default:
		fail(fmt.Errorf("presence must be online or offline, got %q", state))
	}
	resp, err := a.c.Messaging.SetPresence(ctx, &parleyv1.SetPresenceRequest{Online: online})
	if err != nil {
		fail(err)
	}
	a.printPresence(resp.Presence)
}

func (a *cli) online(ctx context.Context) {
	resp, err := a.c.Messaging.ListOnline(ctx, &parleyv1.ListOnlineRequest{})
	if err != nil {
		fail(err)
	}
	if a.jsonOut {
		outputJSON(resp)
		return
	}
	if len(resp.Users) == 0 {
		fmt.Println("Nobody is online.")
		return
	}
	for _, p := range resp.Users {
		fmt.Println(p.UserId)
	}
}

// watch subscribes to topics and prints frames until interrupted.
func (a *cli) watch(topics []string) {
	if len(topics) == 0 {
		fmt.Fprintln(os.Stderr, "usage: parleyctl watch <topic>...")
		os.Exit(1)
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	stream, err := a.c.Messaging.Session(ctx)
	if err != nil {
		fail(err)
	}
	for _, topic := range topics {
		if err := stream.Send(&parleyv1.SessionRequest{Action: parleyv1.SessionAction_SESSION_ACTION_SUBSCRIBE, Topic: topic}); err != nil {
			fail(err)
		}
	}

	for {
		evt, err := stream.Recv()
		if errors.Is(err, io.EOF) || ctx.Err() != nil {
			return
		}
		if err != nil {
			fail(err)
		}
		if a.jsonOut {
			outputJSON(frame{
				Topic:      evt.Topic,
				Kind:       evt.Kind,
				Subscribed: evt.Subscribed,
				Error:      evt.Error,
				Payload:    evt.Payload,
				OccurredAt: evt.OccurredAt.AsTime(),
			})
			continue
		}
		switch {
		case evt.Error != "":
			fmt.Printf("%s  error: %s\n", evt.Topic, evt.Error)
		case evt.Kind == "":
			state := "unsubscribed"
			if evt.Subscribed {
				state = "subscribed"
			}
			fmt.Printf("%s  %s\n", evt.Topic, state)
		default:
			fmt.Printf("%s  %s  %-22s %s\n", evt.OccurredAt.AsTime().Local().Format(time.TimeOnly), evt.Topic, evt.Kind, evt.Payload)
		}
	}
}

func (a *cli) printMessage(m *parleyv1.Message) {
	if a.jsonOut {
		outputJSON(m)
		return
	}
	sender := m.SenderName
	if sender == "" {
		sender = m.SenderId
	}
	line := m.Content
	if m.Attachment != nil {
		line = fmt.Sprintf("[%s %s] %s", m.Type, m.Attachment.Url, m.Content)
	}
	fmt.Printf("#%-4d %s  %-12s %-9s %s\n", m.Seq, m.Timestamp.AsTime().Local().Format(time.DateTime), sender, m.DeliveryStatus, line)
}

func (a *cli) printPresence(p *parleyv1.Presence) {
	if a.jsonOut {
		outputJSON(p)
		return
	}
	if p.IsOnline {
		fmt.Printf("%s is online\n", p.UserId)
		return
	}
	if p.LastSeen.AsTime().Unix() <= 0 {
		fmt.Printf("%s is offline (never seen)\n", p.UserId)
		return
	}
	fmt.Printf("%s is offline (last seen %s)\n", p.UserId, p.LastSeen.AsTime().Local().Format(time.DateTime))
}

// subject returns the user id of tok when the configured secret can verify
// it, or "" otherwise.
func subject(cfg *config.Config, tok string) string {
	j, err := identity.NewJWT(cfg.Identity.JWTSecret, cfg.Identity.Issuer, 0)
	if err != nil {
		return ""
	}
	id, err := j.Parse(tok)
	if err != nil {
		return ""
	}
	return id.UserID
}

func need(args []string, n int, usage string) {
	if len(args) < n {
		fmt.Fprintf(os.Stderr, "usage: parleyctl %s\n", usage)
		os.Exit(1)
	}
}

func argOr(args []string, i int, def string) string {
	if i < len(args) {
		return args[i]
	}
	return def
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}

// frame is the --json rendering of a session event, with the payload
// inlined instead of base64 encoded.
type frame struct {
	Topic      string          `json:"topic"`
	Kind       string          `json:"kind,omitempty"`
	Subscribed bool            `json:"subscribed,omitempty"`
	Error      string          `json:"error,omitempty"`
	Payload    json.RawMessage `json:"payload,omitempty"`
	OccurredAt time.Time       `json:"occurredAt"`
}

func outputJSON(v any) {
	if m, ok := v.(proto.Message); ok {
		b, err := protojson.MarshalOptions{Multiline: true, Indent: "  "}.Marshal(m)
		if err != nil {
			fmt.Fprintf(os.Stderr, "json encode error: %v\n", err)
			return
		}
		fmt.Println(string(b))
		return
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		fmt.Fprintf(os.Stderr, "json encode error: %v\n", err)
	}
}
