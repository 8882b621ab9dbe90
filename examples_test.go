package dotted_test

import (
	"context"
	"fmt"

	"github.com/RedDocMD/dotted"
	"github.com/RedDocMD/dotted/providers/local"
	"github.com/RedDocMD/dotted/providers/mock"
	"github.com/spf13/afero"
)

func ExampleExecutor_RunBuffered_local() {
	env, err := local.New()
	if err != nil {
		panic(err)
	}

	defer func() { _ = env.Close() }()

	exec := dotted.NewExecutor(env)

	res, err := exec.RunBuffered(context.Background(), dotted.NewCommand("echo", "hello", "world"))
	if err != nil {
		panic(err)
	}

	fmt.Printf("%s", res.Stdout)
	// Output: hello world
}

func ExampleFrom() {
	// A docker invocation configured as a string, e.g. from an environment variable.
	docker, err := dotted.ParseCommand(`sudo docker`)
	if err != nil {
		panic(err)
	}

	cmd := dotted.From(docker).
		Args("run", "--rm", "-it").
		Args("-v", "/home/dev/my code:/code").
		Arg("redocmd/dotted").
		Build()

	fmt.Println(cmd)
	// Output: sudo docker run --rm -it -v "/home/dev/my code:/code" redocmd/dotted
}

func ExampleExitCode() {
	env := mock.New()
	env.OnRun("docker").Return(&dotted.Result{ExitCode: 125}, nil)

	_, err := dotted.NewExecutor(env).Run(context.Background(), dotted.NewCommand("docker", "build", "."))

	fmt.Println(err)
	fmt.Println(dotted.ExitCode(err))
	// Output:
	// command "docker build ." exited with code 125
	// 125
}

func ExampleEnvironment_upload() {
	fsys := afero.NewMemMapFs()
	_ = afero.WriteFile(fsys, "/root/data/vimrc", []byte("set number"), 0o644)

	env, err := local.New(local.WithFs(fsys))
	if err != nil {
		panic(err)
	}

	defer func() { _ = env.Close() }()

	err = env.Upload(context.Background(), "/root/data/vimrc", "/root/.config/vim/vimrc",
		dotted.WithProgress(func(current, total int64) {
			fmt.Printf("copied %d/%d bytes\n", current, total)
		}),
	)
	if err != nil {
		panic(err)
	}

	content, _ := afero.ReadFile(fsys, "/root/.config/vim/vimrc")
	fmt.Println(string(content))

	// Output:
	// copied 10/10 bytes
	// set number
}
