/*
Package parley runs declarative sequences of interactive actions: each action
may execute a shell script, pose a prompt (confirm, input, or select), capture
the answer into a shared variable bag, and decide how its outcome affects the
rest of the sequence.

Workflows are plain YAML:

	name: release
	actions:
	  - name: confirm-release
	    interaction:
	      kind: confirm
	      prompt: Release to production?
	    break_if_cancel: true
	  - name: pick-region
	    interaction:
	      kind: select
	      prompt: Which region?
	      options: [eu, us]
	      out: region
	  - name: ship
	    run: ./deploy.sh {{region}}

Prompting is abstracted behind a surface so the same workflow runs against a
live terminal or a scripted event queue:

	surface := scripted.New(scripted.Join(
		scripted.Line("y"),
		scripted.Down(1), scripted.Enter(),
	)...)

	runner := parley.NewRunner(parley.WithSurface(surface))
	results, err := runner.RunWorkflow(ctx, workflow)

Values captured by earlier actions are visible to later ones through the
shared bag, and appear in run scripts through {{variable}} substitution.
*/
package parley
